package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tdnguyen/ieltslab/internal/models"
	"github.com/tdnguyen/ieltslab/internal/repository"
)

// ErrValidation marks request payloads rejected before any storage mutation.
// Handlers match on it to answer 400 instead of 500.
var ErrValidation = errors.New("validation failed")

// CardService provides business logic for vocabulary card operations
type CardService struct {
	cards repository.CardRepository
	words repository.WordRepository
}

// NewCardService creates a new card service
func NewCardService(cards repository.CardRepository, words repository.WordRepository) *CardService {
	return &CardService{
		cards: cards,
		words: words,
	}
}

// Create creates a new card. The favorite flag cannot be set at creation
// and the study count defaults to zero.
func (s *CardService) Create(ctx context.Context, req *models.CreateCardRequest) (*models.VocabularyCard, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required: %w", ErrValidation)
	}

	card := &models.VocabularyCard{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		StudyCount:  0,
		IsFavorited: 0,
		CreatedAt:   time.Now().Format("2006-01-02"),
	}
	if req.StudyCount != nil {
		card.StudyCount = *req.StudyCount
	}

	created, err := s.cards.Create(ctx, card)
	if err != nil {
		return nil, err
	}

	// The card reference on words is weak, so a word may already point at
	// the id this card was just assigned. Count live associations like
	// every read path does instead of assuming zero.
	return s.withWordCount(ctx, created)
}

// GetByID retrieves a card with its word count recomputed from the live
// word associations. The stored count is never trusted.
func (s *CardService) GetByID(ctx context.Context, id int64) (*models.VocabularyCard, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withWordCount(ctx, card)
}

// List retrieves all cards, each with its word count recomputed
func (s *CardService) List(ctx context.Context) ([]*models.VocabularyCard, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, card := range cards {
		if _, err := s.withWordCount(ctx, card); err != nil {
			return nil, err
		}
	}
	return cards, nil
}

// UpdateFavorite flips the favorite flag, leaving every other field untouched
func (s *CardService) UpdateFavorite(ctx context.Context, id int64, isFavorited bool) (*models.VocabularyCard, error) {
	flag := 0
	if isFavorited {
		flag = 1
	}

	card, err := s.cards.UpdateFavorite(ctx, id, flag)
	if err != nil {
		return nil, err
	}
	return s.withWordCount(ctx, card)
}

func (s *CardService) withWordCount(ctx context.Context, card *models.VocabularyCard) (*models.VocabularyCard, error) {
	count, err := s.words.CountByCardID(ctx, card.ID)
	if err != nil {
		return nil, err
	}
	card.WordCount = count
	return card, nil
}
