package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database.
// Password holds the keyed-hash digest and is never serialized to clients.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key, generated by the store
	Name      string    `json:"name" db:"name"`             // Unique username
	Email     string    `json:"email" db:"email"`           // User email
	Password  string    `json:"-" db:"password"`            // Password digest
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
