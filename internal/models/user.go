package models

import (
	"time"

	"github.com/google/uuid"
)

// User backs dashboard sign-in. Password holds a bcrypt hash, never plaintext.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
