// Package auth verifies dashboard credentials and issues session
// tokens. Failures are classified into exactly two kinds: invalid
// credentials (user-correctable) and everything else (re-raised).
package auth

import (
	"errors"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown email and a wrong
// password; callers can never tell which.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 120 * time.Minute

// UserStore is the persistence collaborator for credential lookups.
type UserStore interface {
	GetByEmail(email string) (*models.User, error)
}

type Service struct {
	users  UserStore
	secret []byte
	now    func() time.Time
}

func NewService(users UserStore, secret []byte) *Service {
	return &Service{users: users, secret: secret, now: time.Now}
}

type tokenClaims struct {
	jwt.StandardClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Authenticate verifies the credential pair against the stored bcrypt
// hash and returns a signed session token. Storage faults other than
// a missing user pass through unwrapped.
func (s *Service) Authenticate(email, password string) (string, error) {
	user, err := s.users.GetByEmail(email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := tokenClaims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  s.now().Unix(),
			ExpiresAt: s.now().Add(tokenTTL).Unix(),
		},
		UserID: user.ID.String(),
		Email:  user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken parses a session token and returns the user id it was
// issued for.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}

// HashPassword bcrypt-hashes a plaintext password; used by seeding.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
