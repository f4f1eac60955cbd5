package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a row in the users table. A user holds at least one
// credential: a bcrypt password hash (password flow) or a Google subject
// identifier (Google flow). Accounts are never merged across flows.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash *string // nil for Google-only users
	GoogleID     *string // nil for password-only users
	IsDisabled   bool
	CreatedAt    time.Time
}
