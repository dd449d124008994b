package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/lifeosapp/backend/config"
	"github.com/lifeosapp/backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@lifeos.local"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	// A few sample records so scores are non-zero out of the box
	if _, err := db.Exec(`
		INSERT INTO health_logs (user_id, mood, sleep_hours, sleep_quality, stress, water_intake, notes)
		VALUES ($1, 7, 7.5, 8, 4, 2.0, 'seeded log')
	`, id); err != nil {
		log.Fatalf("failed to seed health log: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO transactions (user_id, type, amount, category)
		VALUES ($1, 'income', 2500, 'salary'), ($1, 'expense', 900, 'rent')
	`, id); err != nil {
		log.Fatalf("failed to seed transactions: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO habits (user_id, name, frequency)
		VALUES ($1, 'Morning run', 'daily'), ($1, 'Read 20 pages', 'daily')
	`, id); err != nil {
		log.Fatalf("failed to seed habits: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO goals (user_id, title, category, priority, progress)
		VALUES ($1, 'Learn Go', 'career', 'high', 40)
	`, id); err != nil {
		log.Fatalf("failed to seed goal: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO relationships (user_id, name, type, health_score)
		VALUES ($1, 'Alex', 'friend', 80)
	`, id); err != nil {
		log.Fatalf("failed to seed relationship: %v", err)
	}

	fmt.Println("seeded sample records; scores will populate on first recompute")
}
