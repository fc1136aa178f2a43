package models

// VocabularyWord represents a single vocabulary entry belonging to at most one card
type VocabularyWord struct {
	ID                int64    `json:"id"`
	CardID            *int64   `json:"cardId"`
	Word              string   `json:"word"`
	Pronunciation     *string  `json:"pronunciation"`
	PartOfSpeech      string   `json:"partOfSpeech"` // N, V, Adj, Adv, Phrase, Idiom
	Definition        string   `json:"definition"`
	Vietnamese        string   `json:"vietnamese"`
	Example           string   `json:"example"`
	ExampleVietnamese string   `json:"exampleVietnamese"`
	Tags              []string `json:"tags"` // nil serializes as null
}

// CreateWordRequest represents the request body for creating a word
type CreateWordRequest struct {
	CardID            *int64   `json:"cardId,omitempty"`
	Word              string   `json:"word"`
	Pronunciation     *string  `json:"pronunciation,omitempty"`
	PartOfSpeech      string   `json:"partOfSpeech"`
	Definition        string   `json:"definition"`
	Vietnamese        string   `json:"vietnamese"`
	Example           string   `json:"example"`
	ExampleVietnamese string   `json:"exampleVietnamese"`
	Tags              []string `json:"tags,omitempty"`
}
