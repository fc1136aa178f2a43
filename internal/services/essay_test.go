package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tdnguyen/ieltslab/internal/models"
	"github.com/tdnguyen/ieltslab/internal/repository"
)

func floatPtr(f float64) *float64 { return &f }

func TestEssayService_Create(t *testing.T) {
	svc := NewEssayService(repository.NewMemoryEssayRepository())
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *models.CreateEssayRequest
		wantErr bool
	}{
		{
			name: "valid essay",
			req: &models.CreateEssayRequest{
				TaskType: "task2",
				Question: "Some people think technology makes life more complex.",
				Essay:    "In recent years, technology has...",
			},
			wantErr: false,
		},
		{
			name: "missing task type",
			req: &models.CreateEssayRequest{
				Question: "q",
				Essay:    "e",
			},
			wantErr: true,
		},
		{
			name: "missing question",
			req: &models.CreateEssayRequest{
				TaskType: "task2",
				Essay:    "e",
			},
			wantErr: true,
		},
		{
			name: "missing essay",
			req: &models.CreateEssayRequest{
				TaskType: "task2",
				Question: "q",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Create(ctx, tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("Create() error = %v, want ErrValidation", err)
				}
				return
			}
			if got.ID == 0 {
				t.Error("Create() returned essay with ID = 0")
			}
			if got.CreatedAt == "" {
				t.Error("Create() returned empty createdAt")
			}
		})
	}
}

func TestEssayService_Create_ScoresAlwaysNull(t *testing.T) {
	svc := NewEssayService(repository.NewMemoryEssayRepository())
	ctx := context.Background()

	// Even if a client smuggled score-like fields into the payload they are
	// not part of the create request and can never survive creation.
	created, err := svc.Create(ctx, &models.CreateEssayRequest{
		TaskType: "task2",
		Question: "q",
		Essay:    "e",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.OverallScore != nil || created.TaskAchievement != nil ||
		created.CoherenceCohesion != nil || created.LexicalResource != nil ||
		created.GrammaticalRange != nil || created.Feedback != nil {
		t.Errorf("Create() scores not null: %+v", created)
	}
	if created.FileName != nil {
		t.Errorf("Create() fileName = %v, want nil", created.FileName)
	}
}

func TestEssayService_UpdateScores(t *testing.T) {
	svc := NewEssayService(repository.NewMemoryEssayRepository())
	ctx := context.Background()

	created, _ := svc.Create(ctx, &models.CreateEssayRequest{
		TaskType: "task2",
		Question: "q",
		Essay:    "e",
	})

	scores := &models.UpdateScoresRequest{
		OverallScore:      floatPtr(7.5),
		TaskAchievement:   floatPtr(7.0),
		CoherenceCohesion: floatPtr(7.5),
		LexicalResource:   floatPtr(8.0),
		GrammaticalRange:  floatPtr(7.0),
		Feedback:          strPtr("Strong lexical resource."),
	}

	updated, err := svc.UpdateScores(ctx, created.ID, scores)
	if err != nil {
		t.Fatalf("UpdateScores() error = %v", err)
	}
	if updated.OverallScore == nil || *updated.OverallScore != 7.5 {
		t.Errorf("UpdateScores() overallScore = %v, want 7.5", updated.OverallScore)
	}
	if updated.TaskType != "task2" || updated.Question != "q" || updated.Essay != "e" ||
		updated.CreatedAt != created.CreatedAt {
		t.Errorf("UpdateScores() modified submission fields: %+v", updated)
	}

	if _, err := svc.UpdateScores(ctx, 9999, scores); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("UpdateScores(9999) error = %v, want ErrNotFound", err)
	}
}

func TestUserService_Create(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository())
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *models.CreateUserRequest
		wantErr bool
	}{
		{
			name:    "valid user",
			req:     &models.CreateUserRequest{Username: "linh", Password: "secret"},
			wantErr: false,
		},
		{
			name:    "missing username",
			req:     &models.CreateUserRequest{Password: "secret"},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     &models.CreateUserRequest{Username: "linh"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Create(ctx, tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got.ID == 0 {
				t.Error("Create() returned user with ID = 0")
			}
		})
	}
}
