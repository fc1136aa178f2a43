package services

import (
	"context"
	"fmt"

	"github.com/tdnguyen/ieltslab/internal/models"
	"github.com/tdnguyen/ieltslab/internal/repository"
)

// WordService provides business logic for vocabulary word operations
type WordService struct {
	repo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(repo repository.WordRepository) *WordService {
	return &WordService{repo: repo}
}

// Create creates a new word. The card reference, pronunciation, and tags
// stay null when absent; no existence check is made on the referenced card
// (the association is a weak reference by contract).
func (s *WordService) Create(ctx context.Context, req *models.CreateWordRequest) (*models.VocabularyWord, error) {
	if req.Word == "" {
		return nil, fmt.Errorf("word is required: %w", ErrValidation)
	}

	word := &models.VocabularyWord{
		CardID:            req.CardID,
		Word:              req.Word,
		Pronunciation:     req.Pronunciation,
		PartOfSpeech:      req.PartOfSpeech,
		Definition:        req.Definition,
		Vietnamese:        req.Vietnamese,
		Example:           req.Example,
		ExampleVietnamese: req.ExampleVietnamese,
		Tags:              req.Tags,
	}

	return s.repo.Create(ctx, word)
}

// GetByID retrieves a word by ID
func (s *WordService) GetByID(ctx context.Context, id int64) (*models.VocabularyWord, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByCardID retrieves all words associated with a card; no match yields
// an empty list, not an error
func (s *WordService) ListByCardID(ctx context.Context, cardID int64) ([]*models.VocabularyWord, error) {
	return s.repo.ListByCardID(ctx, cardID)
}
