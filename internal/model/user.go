package model

import (
	"time"

	"github.com/google/uuid"
)

// User stores cafe staff accounts. Login is an exact username+PIN match;
// the PIN is a 4-digit shared secret stored as entered. IsAdmin gates
// user management and report deletion.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string    `gorm:"uniqueIndex;not null"`
	PIN       string    `gorm:"column:pin;type:varchar(4);not null"`
	IsAdmin   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}
