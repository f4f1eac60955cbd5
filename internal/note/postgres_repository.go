package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// List retrieves all notes belonging to the user.
func (r *PostgresRepository) List(ctx context.Context, userID uuid.UUID) ([]Note, error) {
	query := `
		SELECT id, user_id, title, content, last_updated
		FROM notes
		WHERE user_id = $1
		ORDER BY last_updated ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating note rows: %w", err)
	}

	if notes == nil {
		notes = []Note{}
	}

	return notes, nil
}

// Get retrieves a single note by id, scoped to the user.
func (r *PostgresRepository) Get(ctx context.Context, userID, noteID uuid.UUID) (*Note, error) {
	query := `
		SELECT id, user_id, title, content, last_updated
		FROM notes
		WHERE user_id = $1 AND id = $2`

	var n Note
	err := r.pool.QueryRow(ctx, query, userID, noteID).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Content, &n.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("querying note: %w", err)
	}

	return &n, nil
}

// Save inserts a new note record.
func (r *PostgresRepository) Save(ctx context.Context, n *Note) error {
	query := `
		INSERT INTO notes (id, user_id, title, content, last_updated)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, n.ID, n.UserID, n.Title, n.Content, n.LastUpdated)
	if err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}

	return nil
}

// Update replaces title and content of the user's note. Zero rows affected
// is not an error.
func (r *PostgresRepository) Update(ctx context.Context, n *Note) error {
	query := `
		UPDATE notes
		SET title = $1, content = $2, last_updated = $3
		WHERE user_id = $4 AND id = $5`

	_, err := r.pool.Exec(ctx, query, n.Title, n.Content, n.LastUpdated, n.UserID, n.ID)
	if err != nil {
		return fmt.Errorf("updating note: %w", err)
	}

	return nil
}

// Delete removes the user's note. Deleting a missing note is a no-op.
func (r *PostgresRepository) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	query := `DELETE FROM notes WHERE user_id = $1 AND id = $2`

	_, err := r.pool.Exec(ctx, query, userID, noteID)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	return nil
}
