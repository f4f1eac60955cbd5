package note

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNoteNotFound is returned when a note record is not found for the user.
var ErrNoteNotFound = errors.New("note not found")

// Repository provides operations on the notes table. Every operation is
// scoped by user id; a note belonging to another user behaves exactly like a
// missing note.
type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]Note, error)
	Get(ctx context.Context, userID, noteID uuid.UUID) (*Note, error)
	Save(ctx context.Context, n *Note) error
	// Update replaces title and content of an existing note. Updating a
	// note that does not exist for the user is a silent no-op; the original
	// service behaves this way while Get returns not-found, and the
	// inconsistency is preserved deliberately.
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
}
