package seeder

import (
	"context"
	"log"
	"os"
	"strings"

	"prop-match/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminSeeder provisions the operator account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Skipped when the env vars are absent (e.g. accounts managed elsewhere).
type AdminSeeder struct{}

func (AdminSeeder) Name() string { return "admin_user" }

func (AdminSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Printf("[Seeder] admin_user: ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING`,
		uuid.New(), email, string(hash),
	)
	return err
}
