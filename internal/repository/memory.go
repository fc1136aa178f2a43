package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tdnguyen/ieltslab/internal/models"
)

// The memory repositories are the default backend: plain maps keyed by id
// with a monotonic counter, guarded by a RWMutex because the HTTP server
// runs handlers concurrently. Entities are copied on the way in and out so
// callers can never mutate stored state. Everything is lost on restart.

// MemoryCardRepository implements CardRepository with an in-memory map
type MemoryCardRepository struct {
	mu     sync.RWMutex
	cards  map[int64]*models.VocabularyCard
	nextID int64
}

// NewMemoryCardRepository creates an empty in-memory card repository
func NewMemoryCardRepository() *MemoryCardRepository {
	return &MemoryCardRepository{
		cards:  make(map[int64]*models.VocabularyCard),
		nextID: 1,
	}
}

func copyCard(c *models.VocabularyCard) *models.VocabularyCard {
	out := *c
	if c.Description != nil {
		desc := *c.Description
		out.Description = &desc
	}
	return &out
}

// Create inserts a new card and returns it with an assigned ID
func (r *MemoryCardRepository) Create(ctx context.Context, card *models.VocabularyCard) (*models.VocabularyCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyCard(card)
	stored.ID = r.nextID
	r.nextID++
	r.cards[stored.ID] = stored

	return copyCard(stored), nil
}

// GetByID retrieves a card by its ID
func (r *MemoryCardRepository) GetByID(ctx context.Context, id int64) (*models.VocabularyCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := r.cards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyCard(card), nil
}

// List retrieves all cards in id order
func (r *MemoryCardRepository) List(ctx context.Context) ([]*models.VocabularyCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := make([]*models.VocabularyCard, 0, len(r.cards))
	for _, card := range r.cards {
		cards = append(cards, copyCard(card))
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })

	return cards, nil
}

// UpdateFavorite sets the favorite flag, leaving all other fields untouched
func (r *MemoryCardRepository) UpdateFavorite(ctx context.Context, id int64, isFavorited int) (*models.VocabularyCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	card, ok := r.cards[id]
	if !ok {
		return nil, ErrNotFound
	}
	card.IsFavorited = isFavorited

	return copyCard(card), nil
}

// MemoryWordRepository implements WordRepository with an in-memory map
type MemoryWordRepository struct {
	mu     sync.RWMutex
	words  map[int64]*models.VocabularyWord
	nextID int64
}

// NewMemoryWordRepository creates an empty in-memory word repository
func NewMemoryWordRepository() *MemoryWordRepository {
	return &MemoryWordRepository{
		words:  make(map[int64]*models.VocabularyWord),
		nextID: 1,
	}
}

func copyWord(w *models.VocabularyWord) *models.VocabularyWord {
	out := *w
	if w.CardID != nil {
		cardID := *w.CardID
		out.CardID = &cardID
	}
	if w.Pronunciation != nil {
		pron := *w.Pronunciation
		out.Pronunciation = &pron
	}
	if w.Tags != nil {
		out.Tags = append([]string(nil), w.Tags...)
	}
	return &out
}

// Create inserts a new word and returns it with an assigned ID
func (r *MemoryWordRepository) Create(ctx context.Context, word *models.VocabularyWord) (*models.VocabularyWord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyWord(word)
	stored.ID = r.nextID
	r.nextID++
	r.words[stored.ID] = stored

	return copyWord(stored), nil
}

// GetByID retrieves a word by its ID
func (r *MemoryWordRepository) GetByID(ctx context.Context, id int64) (*models.VocabularyWord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	word, ok := r.words[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyWord(word), nil
}

// ListByCardID retrieves all words associated with a card, in id order
func (r *MemoryWordRepository) ListByCardID(ctx context.Context, cardID int64) ([]*models.VocabularyWord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	words := []*models.VocabularyWord{}
	for _, word := range r.words {
		if word.CardID != nil && *word.CardID == cardID {
			words = append(words, copyWord(word))
		}
	}
	sort.Slice(words, func(i, j int) bool { return words[i].ID < words[j].ID })

	return words, nil
}

// CountByCardID returns the number of words associated with a card
func (r *MemoryWordRepository) CountByCardID(ctx context.Context, cardID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, word := range r.words {
		if word.CardID != nil && *word.CardID == cardID {
			count++
		}
	}
	return count, nil
}

// MemoryEssayRepository implements EssayRepository with an in-memory map
type MemoryEssayRepository struct {
	mu     sync.RWMutex
	essays map[int64]*models.EssayGrading
	nextID int64
}

// NewMemoryEssayRepository creates an empty in-memory essay repository
func NewMemoryEssayRepository() *MemoryEssayRepository {
	return &MemoryEssayRepository{
		essays: make(map[int64]*models.EssayGrading),
		nextID: 1,
	}
}

func copyEssay(e *models.EssayGrading) *models.EssayGrading {
	out := *e
	out.FileName = copyStringPtr(e.FileName)
	out.OverallScore = copyFloatPtr(e.OverallScore)
	out.TaskAchievement = copyFloatPtr(e.TaskAchievement)
	out.CoherenceCohesion = copyFloatPtr(e.CoherenceCohesion)
	out.LexicalResource = copyFloatPtr(e.LexicalResource)
	out.GrammaticalRange = copyFloatPtr(e.GrammaticalRange)
	out.Feedback = copyStringPtr(e.Feedback)
	return &out
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyFloatPtr(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// Create inserts a new essay grading and returns it with an assigned ID
func (r *MemoryEssayRepository) Create(ctx context.Context, essay *models.EssayGrading) (*models.EssayGrading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyEssay(essay)
	stored.ID = r.nextID
	r.nextID++
	r.essays[stored.ID] = stored

	return copyEssay(stored), nil
}

// GetByID retrieves an essay grading by its ID
func (r *MemoryEssayRepository) GetByID(ctx context.Context, id int64) (*models.EssayGrading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	essay, ok := r.essays[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyEssay(essay), nil
}

// List retrieves all essay gradings sorted by createdAt descending, ties
// broken by id descending
func (r *MemoryEssayRepository) List(ctx context.Context) ([]*models.EssayGrading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	essays := make([]*models.EssayGrading, 0, len(r.essays))
	for _, essay := range r.essays {
		essays = append(essays, copyEssay(essay))
	}
	sort.Slice(essays, func(i, j int) bool {
		ti, tj := parseCreatedAt(essays[i].CreatedAt), parseCreatedAt(essays[j].CreatedAt)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return essays[i].ID > essays[j].ID
	})

	return essays, nil
}

// parseCreatedAt accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
// Unparseable values sort last.
func parseCreatedAt(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

// UpdateScores merges the score fields into an existing record
func (r *MemoryEssayRepository) UpdateScores(ctx context.Context, id int64, scores *models.UpdateScoresRequest) (*models.EssayGrading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	essay, ok := r.essays[id]
	if !ok {
		return nil, ErrNotFound
	}

	essay.OverallScore = copyFloatPtr(scores.OverallScore)
	essay.TaskAchievement = copyFloatPtr(scores.TaskAchievement)
	essay.CoherenceCohesion = copyFloatPtr(scores.CoherenceCohesion)
	essay.LexicalResource = copyFloatPtr(scores.LexicalResource)
	essay.GrammaticalRange = copyFloatPtr(scores.GrammaticalRange)
	essay.Feedback = copyStringPtr(scores.Feedback)

	return copyEssay(essay), nil
}

// MemoryUserRepository implements UserRepository with an in-memory map
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int64]*models.User
	nextID int64
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make(map[int64]*models.User),
		nextID: 1,
	}
}

// Create inserts a new user. Duplicate usernames are permitted.
func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.ID] = &stored

	out := stored
	return &out, nil
}

// GetByID retrieves a user by ID
func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *user
	return &out, nil
}

// GetByUsername retrieves the first user with the given username in id order
func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *models.User
	for _, user := range r.users {
		if user.Username != username {
			continue
		}
		if found == nil || user.ID < found.ID {
			found = user
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	out := *found
	return &out, nil
}
