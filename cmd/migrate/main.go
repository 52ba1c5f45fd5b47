package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/monthsbackend/internal/db"
	"github.com/monthsbackend/internal/models"
	"github.com/monthsbackend/internal/questions"
	"github.com/monthsbackend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using existing environment variables")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := db.Connect(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	log.Println("Connected to Postgres successfully")

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	migrationsDir := "./migrations"

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	log.Printf("Running command: %s", command)
	switch command {
	case "up":
		if err := goose.Up(pool.DB, migrationsDir); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")
	case "down":
		if err := goose.Down(pool.DB, migrationsDir); err != nil {
			log.Fatalf("Failed to rollback migration: %v", err)
		}
		log.Println("Rollback completed successfully")
	case "status":
		if err := goose.Status(pool.DB, migrationsDir); err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}
	case "version":
		version, err := goose.GetDBVersion(pool.DB)
		if err != nil {
			log.Fatalf("Failed to get version: %v", err)
		}
		log.Printf("Current migration version: %d", version)
	case "seed":
		if err := seedQuestions(pool); err != nil {
			log.Fatalf("Failed to seed questions: %v", err)
		}
	default:
		log.Fatalf("Unknown command: %s. Available commands: up, down, status, version, seed", command)
	}
}

// seedQuestions loads the built-in question catalog, skipping any question
// whose text is already present. Safe to run repeatedly.
func seedQuestions(pool *sqlx.DB) error {
	catalog := make([]models.Question, 0, len(questions.Catalog))
	for _, q := range questions.Catalog {
		catalog = append(catalog, models.Question{
			Text:     q.Text,
			Category: q.Category,
			IsActive: true,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	inserted, err := store.NewPostgresFromDB(pool).SeedQuestions(ctx, catalog)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d questions (%d already present)", inserted, len(catalog)-inserted)
	return nil
}
