package repository

import (
	"context"
	"errors"
	"fmt"

	"studyshare-backend/common"
	"studyshare-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, college, phone, degree_year, about, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.College,
		&user.Phone,
		&user.DegreeYear,
		&user.About,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// UpsertByEmail creates a user on first sign-in or returns the
// existing row for the email. The upsert is atomic: concurrent first
// sign-ins with the same email resolve to a single user row.
func (r *UserRepository) UpsertByEmail(ctx context.Context, email, name string) (*models.User, error) {
	query := `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING ` + userColumns

	return scanUser(r.db.QueryRow(ctx, query, name, email))
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// ProfileUpdate holds the mutable profile fields.
type ProfileUpdate struct {
	Name       string
	College    *string
	Phone      *string
	DegreeYear *string
	About      *string
}

// UpdateProfile updates a user's profile fields
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*models.User, error) {
	query := `
		UPDATE users SET
			name = $2,
			college = $3,
			phone = $4,
			degree_year = $5,
			about = $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	return scanUser(r.db.QueryRow(
		ctx, query,
		id,
		update.Name,
		update.College,
		update.Phone,
		update.DegreeYear,
		update.About,
	))
}
