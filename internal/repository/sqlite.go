package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tdnguyen/ieltslab/internal/models"
)

// The sqlite repositories are the durable alternative to the memory backend.
// They implement the same interfaces with identical semantics; schema lives
// in migrations/.

// SQLiteCardRepository implements CardRepository using SQLite
type SQLiteCardRepository struct {
	db *sql.DB
}

// NewSQLiteCardRepository creates a new SQLite card repository
func NewSQLiteCardRepository(db *sql.DB) *SQLiteCardRepository {
	return &SQLiteCardRepository{db: db}
}

// Create inserts a new card and returns it with an assigned ID
func (r *SQLiteCardRepository) Create(ctx context.Context, card *models.VocabularyCard) (*models.VocabularyCard, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO vocabulary_cards (title, description, category, difficulty, study_count, is_favorited, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		card.Title, card.Description, card.Category, card.Difficulty, card.StudyCount, card.IsFavorited, card.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert card: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	created := *card
	created.ID = id
	return &created, nil
}

// GetByID retrieves a card by its ID
func (r *SQLiteCardRepository) GetByID(ctx context.Context, id int64) (*models.VocabularyCard, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, category, difficulty, study_count, is_favorited, created_at
		 FROM vocabulary_cards WHERE id = ?`, id,
	)
	return scanCard(row)
}

// List retrieves all cards in id order
func (r *SQLiteCardRepository) List(ctx context.Context) ([]*models.VocabularyCard, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, category, difficulty, study_count, is_favorited, created_at
		 FROM vocabulary_cards ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	cards := []*models.VocabularyCard{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return cards, nil
}

// UpdateFavorite sets the favorite flag, leaving all other fields untouched
func (r *SQLiteCardRepository) UpdateFavorite(ctx context.Context, id int64, isFavorited int) (*models.VocabularyCard, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE vocabulary_cards SET is_favorited = ? WHERE id = ?`, isFavorited, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCard(row rowScanner) (*models.VocabularyCard, error) {
	var card models.VocabularyCard
	var description sql.NullString

	err := row.Scan(
		&card.ID, &card.Title, &description, &card.Category, &card.Difficulty,
		&card.StudyCount, &card.IsFavorited, &card.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan card: %w", err)
	}

	if description.Valid {
		card.Description = &description.String
	}

	return &card, nil
}

// SQLiteWordRepository implements WordRepository using SQLite
type SQLiteWordRepository struct {
	db *sql.DB
}

// NewSQLiteWordRepository creates a new SQLite word repository
func NewSQLiteWordRepository(db *sql.DB) *SQLiteWordRepository {
	return &SQLiteWordRepository{db: db}
}

// Create inserts a new word and returns it with an assigned ID
func (r *SQLiteWordRepository) Create(ctx context.Context, word *models.VocabularyWord) (*models.VocabularyWord, error) {
	var tagsJSON interface{}
	if word.Tags != nil {
		encoded, err := json.Marshal(word.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tags: %w", err)
		}
		tagsJSON = string(encoded)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO vocabulary_words (card_id, word, pronunciation, part_of_speech, definition, vietnamese, example, example_vietnamese, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		word.CardID, word.Word, word.Pronunciation, word.PartOfSpeech, word.Definition,
		word.Vietnamese, word.Example, word.ExampleVietnamese, tagsJSON,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert word: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	created := *word
	created.ID = id
	return &created, nil
}

// GetByID retrieves a word by its ID
func (r *SQLiteWordRepository) GetByID(ctx context.Context, id int64) (*models.VocabularyWord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, card_id, word, pronunciation, part_of_speech, definition, vietnamese, example, example_vietnamese, tags
		 FROM vocabulary_words WHERE id = ?`, id,
	)
	return scanWord(row)
}

// ListByCardID retrieves all words associated with a card, in id order
func (r *SQLiteWordRepository) ListByCardID(ctx context.Context, cardID int64) ([]*models.VocabularyWord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, card_id, word, pronunciation, part_of_speech, definition, vietnamese, example, example_vietnamese, tags
		 FROM vocabulary_words WHERE card_id = ? ORDER BY id`, cardID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	words := []*models.VocabularyWord{}
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return words, nil
}

// CountByCardID returns the number of words associated with a card
func (r *SQLiteWordRepository) CountByCardID(ctx context.Context, cardID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vocabulary_words WHERE card_id = ?`, cardID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

func scanWord(row rowScanner) (*models.VocabularyWord, error) {
	var word models.VocabularyWord
	var cardID sql.NullInt64
	var pronunciation, tagsJSON sql.NullString

	err := row.Scan(
		&word.ID, &cardID, &word.Word, &pronunciation, &word.PartOfSpeech,
		&word.Definition, &word.Vietnamese, &word.Example, &word.ExampleVietnamese, &tagsJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan word: %w", err)
	}

	if cardID.Valid {
		word.CardID = &cardID.Int64
	}
	if pronunciation.Valid {
		word.Pronunciation = &pronunciation.String
	}
	if tagsJSON.Valid {
		if err := json.Unmarshal([]byte(tagsJSON.String), &word.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}

	return &word, nil
}

// SQLiteEssayRepository implements EssayRepository using SQLite
type SQLiteEssayRepository struct {
	db *sql.DB
}

// NewSQLiteEssayRepository creates a new SQLite essay repository
func NewSQLiteEssayRepository(db *sql.DB) *SQLiteEssayRepository {
	return &SQLiteEssayRepository{db: db}
}

// Create inserts a new essay grading and returns it with an assigned ID
func (r *SQLiteEssayRepository) Create(ctx context.Context, essay *models.EssayGrading) (*models.EssayGrading, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO essay_gradings (task_type, question, essay, file_name, created_at,
		 overall_score, task_achievement, coherence_cohesion, lexical_resource, grammatical_range, feedback)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		essay.TaskType, essay.Question, essay.Essay, essay.FileName, essay.CreatedAt,
		essay.OverallScore, essay.TaskAchievement, essay.CoherenceCohesion,
		essay.LexicalResource, essay.GrammaticalRange, essay.Feedback,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert essay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	created := *essay
	created.ID = id
	return &created, nil
}

// GetByID retrieves an essay grading by its ID
func (r *SQLiteEssayRepository) GetByID(ctx context.Context, id int64) (*models.EssayGrading, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, task_type, question, essay, file_name, created_at,
		 overall_score, task_achievement, coherence_cohesion, lexical_resource, grammatical_range, feedback
		 FROM essay_gradings WHERE id = ?`, id,
	)
	return scanEssay(row)
}

// List retrieves all essay gradings sorted by createdAt descending
func (r *SQLiteEssayRepository) List(ctx context.Context) ([]*models.EssayGrading, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, task_type, question, essay, file_name, created_at,
		 overall_score, task_achievement, coherence_cohesion, lexical_resource, grammatical_range, feedback
		 FROM essay_gradings ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query essays: %w", err)
	}
	defer rows.Close()

	essays := []*models.EssayGrading{}
	for rows.Next() {
		essay, err := scanEssay(rows)
		if err != nil {
			return nil, err
		}
		essays = append(essays, essay)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return essays, nil
}

// UpdateScores merges the score fields into an existing record
func (r *SQLiteEssayRepository) UpdateScores(ctx context.Context, id int64, scores *models.UpdateScoresRequest) (*models.EssayGrading, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE essay_gradings SET overall_score = ?, task_achievement = ?, coherence_cohesion = ?,
		 lexical_resource = ?, grammatical_range = ?, feedback = ? WHERE id = ?`,
		scores.OverallScore, scores.TaskAchievement, scores.CoherenceCohesion,
		scores.LexicalResource, scores.GrammaticalRange, scores.Feedback, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update essay: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func scanEssay(row rowScanner) (*models.EssayGrading, error) {
	var essay models.EssayGrading
	var fileName, feedback sql.NullString
	var overall, task, coherence, lexical, grammar sql.NullFloat64

	err := row.Scan(
		&essay.ID, &essay.TaskType, &essay.Question, &essay.Essay, &fileName, &essay.CreatedAt,
		&overall, &task, &coherence, &lexical, &grammar, &feedback,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan essay: %w", err)
	}

	if fileName.Valid {
		essay.FileName = &fileName.String
	}
	if overall.Valid {
		essay.OverallScore = &overall.Float64
	}
	if task.Valid {
		essay.TaskAchievement = &task.Float64
	}
	if coherence.Valid {
		essay.CoherenceCohesion = &coherence.Float64
	}
	if lexical.Valid {
		essay.LexicalResource = &lexical.Float64
	}
	if grammar.Valid {
		essay.GrammaticalRange = &grammar.Float64
	}
	if feedback.Valid {
		essay.Feedback = &feedback.String
	}

	return &essay, nil
}

// SQLiteUserRepository implements UserRepository using SQLite
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLite user repository
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user. Duplicate usernames are permitted.
func (r *SQLiteUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?)`,
		user.Username, user.Password,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

// GetByID retrieves a user by ID
func (r *SQLiteUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE id = ?`, id,
	)
	return scanUser(row)
}

// GetByUsername retrieves the first user with the given username in id order
func (r *SQLiteUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = ? ORDER BY id LIMIT 1`, username,
	)
	return scanUser(row)
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}
