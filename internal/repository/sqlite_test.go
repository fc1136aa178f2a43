package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tdnguyen/ieltslab/internal/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE vocabulary_cards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			category TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL DEFAULT '',
			study_count INTEGER NOT NULL DEFAULT 0,
			is_favorited INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE TABLE vocabulary_words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			card_id INTEGER,
			word TEXT NOT NULL,
			pronunciation TEXT,
			part_of_speech TEXT NOT NULL DEFAULT '',
			definition TEXT NOT NULL DEFAULT '',
			vietnamese TEXT NOT NULL DEFAULT '',
			example TEXT NOT NULL DEFAULT '',
			example_vietnamese TEXT NOT NULL DEFAULT '',
			tags TEXT
		);
		CREATE TABLE essay_gradings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_type TEXT NOT NULL,
			question TEXT NOT NULL,
			essay TEXT NOT NULL,
			file_name TEXT,
			created_at TEXT NOT NULL,
			overall_score REAL,
			task_achievement REAL,
			coherence_cohesion REAL,
			lexical_resource REAL,
			grammatical_range REAL,
			feedback TEXT
		);
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			password TEXT NOT NULL
		);
	`)
	if err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}

	return db
}

func TestSQLiteCardRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteCardRepository(db)
	ctx := context.Background()

	tests := []struct {
		name string
		card *models.VocabularyCard
	}{
		{
			name: "card with all fields",
			card: &models.VocabularyCard{
				Title:       "Academic Writing",
				Description: strPtr("Band 7+ vocabulary"),
				Category:    "academic",
				Difficulty:  "hard",
				StudyCount:  2,
				CreatedAt:   "2024-01-01",
			},
		},
		{
			name: "card with minimal fields",
			card: &models.VocabularyCard{
				Title:     "Environment",
				CreatedAt: "2024-01-02",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := repo.Create(ctx, tt.card)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if created.ID == 0 {
				t.Error("Create() returned card with ID = 0")
			}

			got, err := repo.GetByID(ctx, created.ID)
			if err != nil {
				t.Fatalf("GetByID() error = %v", err)
			}
			if got.Title != tt.card.Title {
				t.Errorf("GetByID() title = %q, want %q", got.Title, tt.card.Title)
			}
			if (got.Description == nil) != (tt.card.Description == nil) {
				t.Errorf("GetByID() description = %v, want %v", got.Description, tt.card.Description)
			}
		})
	}

	if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(9999) error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteCardRepository_UpdateFavorite(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteCardRepository(db)
	ctx := context.Background()

	created, _ := repo.Create(ctx, &models.VocabularyCard{
		Title:      "Academic Writing",
		Category:   "academic",
		StudyCount: 5,
		CreatedAt:  "2024-01-01",
	})

	updated, err := repo.UpdateFavorite(ctx, created.ID, 1)
	if err != nil {
		t.Fatalf("UpdateFavorite() error = %v", err)
	}
	if updated.IsFavorited != 1 {
		t.Errorf("UpdateFavorite() isFavorited = %d, want 1", updated.IsFavorited)
	}
	if updated.Title != "Academic Writing" || updated.StudyCount != 5 {
		t.Errorf("UpdateFavorite() modified unrelated fields: %+v", updated)
	}

	if _, err := repo.UpdateFavorite(ctx, 9999, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateFavorite(9999) error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteWordRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteWordRepository(db)
	ctx := context.Background()

	repo.Create(ctx, &models.VocabularyWord{
		CardID:        int64Ptr(1),
		Word:          "mitigate",
		Pronunciation: strPtr("/ˈmɪtɪɡeɪt/"),
		PartOfSpeech:  "V",
		Definition:    "to make something less harmful",
		Vietnamese:    "giảm nhẹ",
		Tags:          []string{"environment", "band7"},
	})
	repo.Create(ctx, &models.VocabularyWord{
		CardID: int64Ptr(1),
		Word:   "exacerbate",
	})
	repo.Create(ctx, &models.VocabularyWord{
		Word: "detached",
	})

	words, err := repo.ListByCardID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByCardID() error = %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("ListByCardID(1) count = %d, want 2", len(words))
	}
	if words[0].Tags == nil || len(words[0].Tags) != 2 {
		t.Errorf("ListByCardID() tags = %v, want 2 tags", words[0].Tags)
	}
	if words[1].Tags != nil {
		t.Errorf("ListByCardID() tags = %v, want null", words[1].Tags)
	}

	count, err := repo.CountByCardID(ctx, 1)
	if err != nil {
		t.Fatalf("CountByCardID() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountByCardID(1) = %d, want 2", count)
	}

	if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(9999) error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteEssayRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteEssayRepository(db)
	ctx := context.Background()

	repo.Create(ctx, &models.EssayGrading{TaskType: "task2", Question: "q1", Essay: "e1", CreatedAt: "2024-01-01"})
	repo.Create(ctx, &models.EssayGrading{TaskType: "task2", Question: "q2", Essay: "e2", CreatedAt: "2024-03-01"})
	created, _ := repo.Create(ctx, &models.EssayGrading{TaskType: "task1", Question: "q3", Essay: "e3", CreatedAt: "2024-02-01"})

	// Newly created essays carry no scores
	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.OverallScore != nil || got.Feedback != nil {
		t.Errorf("GetByID() scores = %v/%v, want null", got.OverallScore, got.Feedback)
	}

	essays, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"2024-03-01", "2024-02-01", "2024-01-01"}
	for i, essay := range essays {
		if essay.CreatedAt != want[i] {
			t.Errorf("List()[%d].createdAt = %q, want %q", i, essay.CreatedAt, want[i])
		}
	}

	updated, err := repo.UpdateScores(ctx, created.ID, &models.UpdateScoresRequest{
		OverallScore:      floatPtr(6.5),
		TaskAchievement:   floatPtr(6.0),
		CoherenceCohesion: floatPtr(6.5),
		LexicalResource:   floatPtr(7.0),
		GrammaticalRange:  floatPtr(6.0),
		Feedback:          strPtr("Work on cohesion."),
	})
	if err != nil {
		t.Fatalf("UpdateScores() error = %v", err)
	}
	if updated.OverallScore == nil || *updated.OverallScore != 6.5 {
		t.Errorf("UpdateScores() overallScore = %v, want 6.5", updated.OverallScore)
	}
	if updated.Question != "q3" || updated.CreatedAt != "2024-02-01" {
		t.Errorf("UpdateScores() modified submission fields: %+v", updated)
	}

	if _, err := repo.UpdateScores(ctx, 9999, &models.UpdateScoresRequest{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateScores(9999) error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteUserRepository_DuplicateUsernames(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteUserRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, &models.User{Username: "linh", Password: "a"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Create(ctx, &models.User{Username: "linh", Password: "b"}); err != nil {
		t.Fatalf("duplicate Create() error = %v, want nil (duplicates permitted)", err)
	}

	got, err := repo.GetByUsername(ctx, "linh")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("GetByUsername() id = %d, want %d (first match)", got.ID, first.ID)
	}

	if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(9999) error = %v, want ErrNotFound", err)
	}
}
