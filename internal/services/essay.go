package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tdnguyen/ieltslab/internal/models"
	"github.com/tdnguyen/ieltslab/internal/repository"
)

// EssayService provides business logic for essay grading operations
type EssayService struct {
	repo repository.EssayRepository
}

// NewEssayService creates a new essay service
func NewEssayService(repo repository.EssayRepository) *EssayService {
	return &EssayService{repo: repo}
}

// Create submits an essay. All score fields and the feedback start as null
// no matter what the payload carried; scoring is a separate step.
func (s *EssayService) Create(ctx context.Context, req *models.CreateEssayRequest) (*models.EssayGrading, error) {
	if req.TaskType == "" {
		return nil, fmt.Errorf("taskType is required: %w", ErrValidation)
	}
	if req.Question == "" {
		return nil, fmt.Errorf("question is required: %w", ErrValidation)
	}
	if req.Essay == "" {
		return nil, fmt.Errorf("essay is required: %w", ErrValidation)
	}

	essay := &models.EssayGrading{
		TaskType:  req.TaskType,
		Question:  req.Question,
		Essay:     req.Essay,
		FileName:  req.FileName,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	return s.repo.Create(ctx, essay)
}

// GetByID retrieves an essay grading by ID
func (s *EssayService) GetByID(ctx context.Context, id int64) (*models.EssayGrading, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all essay gradings, newest first
func (s *EssayService) List(ctx context.Context) ([]*models.EssayGrading, error) {
	return s.repo.List(ctx)
}

// UpdateScores sets the five band scores and the feedback on an existing
// essay, leaving the submission fields unchanged. The six fields are
// supplied together; there is no partial merge.
func (s *EssayService) UpdateScores(ctx context.Context, id int64, req *models.UpdateScoresRequest) (*models.EssayGrading, error) {
	return s.repo.UpdateScores(ctx, id, req)
}
