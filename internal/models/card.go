package models

// VocabularyCard represents a flashcard deck of vocabulary words
type VocabularyCard struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
	// WordCount is derived on every read from the live word associations;
	// the stored value is never returned to callers.
	WordCount   int    `json:"wordCount"`
	StudyCount  int    `json:"studyCount"`
	IsFavorited int    `json:"isFavorited"` // 0 or 1
	CreatedAt   string `json:"createdAt"`   // YYYY-MM-DD format
}

// CreateCardRequest represents the request body for creating a card
type CreateCardRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
	StudyCount  *int    `json:"studyCount,omitempty"`
}

// UpdateFavoriteRequest represents the request body for the favorite toggle
type UpdateFavoriteRequest struct {
	IsFavorited bool `json:"isFavorited"`
}
