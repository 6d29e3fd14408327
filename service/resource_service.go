package service

import (
	"context"
	"errors"
	"fmt"

	"studyshare-backend/common"
	"studyshare-backend/identity"
	"studyshare-backend/models"

	"github.com/google/uuid"
)

// ResourceRepository is the store interface the resource service
// depends on.
type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	ListAll(ctx context.Context) ([]*models.ResourceView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// UserLookup resolves user identifiers to user records.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ResourceService handles business logic for resources
type ResourceService struct {
	resourceRepo ResourceRepository
	users        UserLookup
}

// ResourceServiceOption is a functional option for ResourceService
type ResourceServiceOption func(*ResourceService)

// WithResourceRepository sets the resource repository
func WithResourceRepository(repo ResourceRepository) ResourceServiceOption {
	return func(s *ResourceService) {
		s.resourceRepo = repo
	}
}

// WithUserLookup sets the user lookup
func WithUserLookup(users UserLookup) ResourceServiceOption {
	return func(s *ResourceService) {
		s.users = users
	}
}

// NewResourceService creates a new resource service
func NewResourceService(opts ...ResourceServiceOption) *ResourceService {
	s := &ResourceService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AuthorizeDelete reports whether the requester may delete the
// resource. Both sides of the comparison are normalized to canonical
// string form first; only the resource's owner is allowed.
func AuthorizeDelete(resource *models.Resource, requesterID string) bool {
	return identity.Canonical(resource.OwnerID) == identity.Canonical(requesterID)
}

// CreateResourceRequest represents a request to create a resource.
// The owner is always the authenticated requester; any client-supplied
// owner or timestamp is ignored.
type CreateResourceRequest struct {
	Title       string
	Description string
	Category    string
	FileType    string
	FileURL     string
	OwnerID     uuid.UUID
	Tags        []string
}

// Create validates the owner and inserts a resource record
func (s *ResourceService) Create(ctx context.Context, req CreateResourceRequest) (*models.Resource, error) {
	if s.resourceRepo == nil {
		return nil, errors.New("resource repository not set")
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if req.FileURL == "" {
		return nil, fmt.Errorf("%w: fileUrl is required", common.ErrValidation)
	}

	// Owner must resolve to an existing user at creation time.
	if s.users != nil {
		if _, err := s.users.GetByID(ctx, req.OwnerID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown owner", common.ErrValidation)
			}
			return nil, err
		}
	}

	resource := &models.Resource{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		FileType:    req.FileType,
		FileURL:     req.FileURL,
		OwnerID:     req.OwnerID,
		Tags:        models.CleanTags(req.Tags),
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

// List returns all resources newest first, each carrying the owner's
// display name
func (s *ResourceService) List(ctx context.Context) ([]*models.ResourceView, error) {
	if s.resourceRepo == nil {
		return nil, errors.New("resource repository not set")
	}
	return s.resourceRepo.ListAll(ctx)
}

// Delete removes a resource after re-validating ownership server-side.
// Returns ErrNotFound for an unknown resource and ErrNotOwner when the
// requester is not the stored owner.
func (s *ResourceService) Delete(ctx context.Context, id uuid.UUID, requesterID string) error {
	if s.resourceRepo == nil {
		return errors.New("resource repository not set")
	}

	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !AuthorizeDelete(resource, requesterID) {
		return common.ErrNotOwner
	}

	return s.resourceRepo.DeleteByID(ctx, id)
}
