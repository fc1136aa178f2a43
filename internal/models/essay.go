package models

// EssayGrading represents a submitted essay and its optional band scores.
// All score fields start as null and are only populated by the scores update;
// creation can never set them.
type EssayGrading struct {
	ID                int64    `json:"id"`
	TaskType          string   `json:"taskType"`
	Question          string   `json:"question"`
	Essay             string   `json:"essay"`
	FileName          *string  `json:"fileName"`
	CreatedAt         string   `json:"createdAt"` // RFC 3339 timestamp
	OverallScore      *float64 `json:"overallScore"`
	TaskAchievement   *float64 `json:"taskAchievement"`
	CoherenceCohesion *float64 `json:"coherenceCohesion"`
	LexicalResource   *float64 `json:"lexicalResource"`
	GrammaticalRange  *float64 `json:"grammaticalRange"`
	Feedback          *string  `json:"feedback"`
}

// CreateEssayRequest represents the request body for submitting an essay.
// Score-like fields in the payload are ignored.
type CreateEssayRequest struct {
	TaskType string  `json:"taskType"`
	Question string  `json:"question"`
	Essay    string  `json:"essay"`
	FileName *string `json:"fileName,omitempty"`
}

// UpdateScoresRequest carries the six score-bearing fields. The contract
// expects all of them together; partial score sets are not supported.
type UpdateScoresRequest struct {
	OverallScore      *float64 `json:"overallScore"`
	TaskAchievement   *float64 `json:"taskAchievement"`
	CoherenceCohesion *float64 `json:"coherenceCohesion"`
	LexicalResource   *float64 `json:"lexicalResource"`
	GrammaticalRange  *float64 `json:"grammaticalRange"`
	Feedback          *string  `json:"feedback"`
}
