package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tdnguyen/ieltslab/internal/api"
	"github.com/tdnguyen/ieltslab/internal/config"
	"github.com/tdnguyen/ieltslab/internal/repository"
	"github.com/tdnguyen/ieltslab/internal/services"
)

func main() {
	cfg := config.Load()

	var (
		cardRepo  repository.CardRepository
		wordRepo  repository.WordRepository
		essayRepo repository.EssayRepository
		userRepo  repository.UserRepository
	)

	switch cfg.StorageDriver {
	case "memory":
		cardRepo = repository.NewMemoryCardRepository()
		wordRepo = repository.NewMemoryWordRepository()
		essayRepo = repository.NewMemoryEssayRepository()
		userRepo = repository.NewMemoryUserRepository()
		log.Println("Using in-memory storage (all data is lost on restart)")

	case "sqlite":
		db, err := sql.Open("sqlite3", cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		if err := runMigrations(db, cfg.MigrationsPath); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Printf("Using sqlite storage at %s", cfg.DatabasePath)

		cardRepo = repository.NewSQLiteCardRepository(db)
		wordRepo = repository.NewSQLiteWordRepository(db)
		essayRepo = repository.NewSQLiteEssayRepository(db)
		userRepo = repository.NewSQLiteUserRepository(db)

	default:
		log.Fatalf("Unknown storage driver %q (want memory or sqlite)", cfg.StorageDriver)
	}

	cardSvc := services.NewCardService(cardRepo, wordRepo)
	wordSvc := services.NewWordService(wordRepo)
	essaySvc := services.NewEssayService(essayRepo)
	userSvc := services.NewUserService(userRepo)

	handler := api.NewHandler(cardSvc, wordSvc, essaySvc, userSvc)
	router := api.NewRouter(handler, cfg.APIToken)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func runMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
