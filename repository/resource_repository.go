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

// ResourceRepository handles database operations for resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create inserts a resource record. The creation timestamp is assigned
// by the database; any client-supplied timestamp is ignored. The owner
// must reference an existing user (enforced by the foreign key).
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (
			title, description, category, file_type, file_url,
			owner_id, downloads, rating, tags
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		resource.Title,
		resource.Description,
		resource.Category,
		resource.FileType,
		resource.FileURL,
		resource.OwnerID,
		resource.Downloads,
		resource.Rating,
		resource.Tags,
	).Scan(&resource.ID, &resource.CreatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListAll retrieves all resources newest first, each enriched with the
// owner's display name. A missing owner yields the "Unknown"
// placeholder instead of failing the listing.
func (r *ResourceRepository) ListAll(ctx context.Context) ([]*models.ResourceView, error) {
	query := `
		SELECT r.id, r.title, r.description, r.category, r.file_type, r.file_url,
			r.owner_id, r.downloads, r.rating, r.tags, r.created_at,
			COALESCE(u.name, 'Unknown') AS uploader_name
		FROM resources r
		LEFT JOIN users u ON u.id = r.owner_id
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var views []*models.ResourceView
	for rows.Next() {
		view := &models.ResourceView{}
		err := rows.Scan(
			&view.ID,
			&view.Title,
			&view.Description,
			&view.Category,
			&view.FileType,
			&view.FileURL,
			&view.OwnerID,
			&view.Downloads,
			&view.Rating,
			&view.Tags,
			&view.CreatedAt,
			&view.UploaderName,
		)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		views = append(views, view)
	}

	return views, rows.Err()
}

// GetByID retrieves a resource by ID
func (r *ResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	resource := &models.Resource{}
	query := `
		SELECT id, title, description, category, file_type, file_url,
			owner_id, downloads, rating, tags, created_at
		FROM resources
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&resource.ID,
		&resource.Title,
		&resource.Description,
		&resource.Category,
		&resource.FileType,
		&resource.FileURL,
		&resource.OwnerID,
		&resource.Downloads,
		&resource.Rating,
		&resource.Tags,
		&resource.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return resource, nil
}

// DeleteByID deletes a resource record
func (r *ResourceRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM resources WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}
