package note

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository implements Repository with an in-process map, mirroring
// the postgres implementation's scoping semantics for tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]Note
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{notes: make(map[uuid.UUID]Note)}
}

// List retrieves all notes belonging to the user, oldest first.
func (r *MemoryRepository) List(_ context.Context, userID uuid.UUID) ([]Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := []Note{}
	for _, n := range r.notes {
		if n.UserID == userID {
			notes = append(notes, n)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].LastUpdated.Before(notes[j].LastUpdated)
	})

	return notes, nil
}

// Get retrieves a single note by id, scoped to the user.
func (r *MemoryRepository) Get(_ context.Context, userID, noteID uuid.UUID) (*Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n, ok := r.notes[noteID]; ok && n.UserID == userID {
		return &n, nil
	}
	return nil, ErrNoteNotFound
}

// Save inserts a new note record.
func (r *MemoryRepository) Save(_ context.Context, n *Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes[n.ID] = *n
	return nil
}

// Update replaces the user's note if present; missing notes are a no-op.
func (r *MemoryRepository) Update(_ context.Context, n *Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.notes[n.ID]; ok && existing.UserID == n.UserID {
		r.notes[n.ID] = *n
	}
	return nil
}

// Delete removes the user's note; missing notes are a no-op.
func (r *MemoryRepository) Delete(_ context.Context, userID, noteID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.notes[noteID]; ok && existing.UserID == userID {
		delete(r.notes, noteID)
	}
	return nil
}
