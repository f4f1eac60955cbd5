package note

import (
	"time"

	"github.com/google/uuid"
)

// Note represents a row in the notes table, always owned by a single user.
type Note struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Content     string
	LastUpdated time.Time
}
