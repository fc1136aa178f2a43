package repository

import (
	"context"
	"errors"

	"github.com/tdnguyen/ieltslab/internal/models"
)

// ErrNotFound is returned by single-entity lookups and targeted updates when
// the id does not exist. It is the only "absent" signal repositories emit;
// callers decide how to surface it.
var ErrNotFound = errors.New("not found")

// CardRepository defines the interface for vocabulary card persistence
type CardRepository interface {
	// Create inserts a new card and returns it with an assigned ID
	Create(ctx context.Context, card *models.VocabularyCard) (*models.VocabularyCard, error)

	// GetByID retrieves a card by its ID
	GetByID(ctx context.Context, id int64) (*models.VocabularyCard, error)

	// List retrieves all cards in id order
	List(ctx context.Context) ([]*models.VocabularyCard, error)

	// UpdateFavorite sets the favorite flag, leaving all other fields untouched
	UpdateFavorite(ctx context.Context, id int64, isFavorited int) (*models.VocabularyCard, error)
}

// WordRepository defines the interface for vocabulary word persistence
type WordRepository interface {
	// Create inserts a new word and returns it with an assigned ID
	Create(ctx context.Context, word *models.VocabularyWord) (*models.VocabularyWord, error)

	// GetByID retrieves a word by its ID
	GetByID(ctx context.Context, id int64) (*models.VocabularyWord, error)

	// ListByCardID retrieves all words associated with a card; an empty
	// result is not an error
	ListByCardID(ctx context.Context, cardID int64) ([]*models.VocabularyWord, error)

	// CountByCardID returns the number of words associated with a card
	CountByCardID(ctx context.Context, cardID int64) (int, error)
}

// EssayRepository defines the interface for essay grading persistence
type EssayRepository interface {
	// Create inserts a new essay grading and returns it with an assigned ID
	Create(ctx context.Context, essay *models.EssayGrading) (*models.EssayGrading, error)

	// GetByID retrieves an essay grading by its ID
	GetByID(ctx context.Context, id int64) (*models.EssayGrading, error)

	// List retrieves all essay gradings sorted by createdAt descending
	List(ctx context.Context) ([]*models.EssayGrading, error)

	// UpdateScores merges the score fields into an existing record,
	// preserving everything else
	UpdateScores(ctx context.Context, id int64, scores *models.UpdateScoresRequest) (*models.EssayGrading, error)
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create inserts a new user and returns it with an assigned ID.
	// No uniqueness check is performed on the username.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByUsername retrieves the first user with the given username in id order
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
