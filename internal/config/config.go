package config

import (
	"os"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DSN assembles a postgres connection string from the environment.
// DB_DSN wins outright; otherwise individual DB_* vars with local
// defaults.
func DSN() string {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return dsn
	}
	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	pass := envOr("DB_PASSWORD", "postgres")
	name := envOr("DB_NAME", "dashboard")
	ssl := envOr("DB_SSLMODE", "disable")
	return "host=" + host + " user=" + user + " password=" + pass +
		" dbname=" + name + " port=" + port + " sslmode=" + ssl
}

// InitDB opens the postgres connection or exits.
func InitDB() *gorm.DB {
	db, err := gorm.Open(postgres.Open(DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	return db
}

// JWTSecret is the signing key for session tokens.
func JWTSecret() []byte {
	return []byte(envOr("JWT_SECRET", "dev-insecure-secret"))
}

// Port is the HTTP listen port.
func Port() string {
	return envOr("PORT", "8080")
}
