package services

import (
	"context"
	"fmt"

	"github.com/tdnguyen/ieltslab/internal/models"
	"github.com/tdnguyen/ieltslab/internal/repository"
)

// UserService provides business logic for user operations
type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create creates a new user. Username uniqueness is deliberately not
// enforced; duplicates resolve by lowest id on lookup.
func (s *UserService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if req.Username == "" {
		return nil, fmt.Errorf("username is required: %w", ErrValidation)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required: %w", ErrValidation)
	}

	user := &models.User{
		Username: req.Username,
		Password: req.Password,
	}

	return s.repo.Create(ctx, user)
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUsername retrieves the first user with the given username
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repo.GetByUsername(ctx, username)
}
