package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

// Create inserts a new user record. Uniqueness of email and google_id is
// enforced by partial unique indexes, so concurrent identical registrations
// cannot produce duplicates.
func (r *PostgresRepository) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, google_id, is_disabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.pool.QueryRow(ctx, query,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.GoogleID,
		u.IsDisabled,
	).Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "users_google_id_key" {
				return ErrDuplicateGoogleID
			}
			return ErrDuplicateEmail
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

// GetByID retrieves a single user by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `
		SELECT id, email, password_hash, google_id, is_disabled, created_at
		FROM users
		WHERE id = $1`

	return r.queryOne(ctx, query, id)
}

// GetByEmail retrieves a single user by email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password_hash, google_id, is_disabled, created_at
		FROM users
		WHERE email = $1`

	return r.queryOne(ctx, query, email)
}

// GetByGoogleID retrieves a single user by Google subject identifier.
func (r *PostgresRepository) GetByGoogleID(ctx context.Context, googleID string) (*User, error) {
	query := `
		SELECT id, email, password_hash, google_id, is_disabled, created_at
		FROM users
		WHERE google_id = $1`

	return r.queryOne(ctx, query, googleID)
}

func (r *PostgresRepository) queryOne(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.GoogleID, &u.IsDisabled, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}

	return &u, nil
}
