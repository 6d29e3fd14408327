package service

import (
	"context"
	"errors"

	"studyshare-backend/models"
	"studyshare-backend/repository"

	"github.com/google/uuid"
)

// UserRepository is the store interface the account service depends on.
type UserRepository interface {
	UpsertByEmail(ctx context.Context, email, name string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update repository.ProfileUpdate) (*models.User, error)
}

// AccountService handles sign-in and profile logic for users
type AccountService struct {
	userRepo UserRepository
}

// AccountServiceOption is a functional option for AccountService
type AccountServiceOption func(*AccountService)

// WithUserRepository sets the user repository
func WithUserRepository(repo UserRepository) AccountServiceOption {
	return func(s *AccountService) {
		s.userRepo = repo
	}
}

// NewAccountService creates a new account service
func NewAccountService(opts ...AccountServiceOption) *AccountService {
	s := &AccountService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignIn creates the user on first sign-in or returns the existing
// record for the email
func (s *AccountService) SignIn(ctx context.Context, email, name string) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}
	return s.userRepo.UpsertByEmail(ctx, email, name)
}

// Get returns a user by ID
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies a profile update and returns the updated user
func (s *AccountService) UpdateProfile(ctx context.Context, id uuid.UUID, update repository.ProfileUpdate) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}
	return s.userRepo.UpdateProfile(ctx, id, update)
}
