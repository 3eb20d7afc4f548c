package seeder

import (
	"context"
	"fmt"

	"prop-match/internal/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS professional_categories (
		id INT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS regions (
		name TEXT PRIMARY KEY,
		state TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL,
		category TEXT NOT NULL,
		title TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'open',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS job_details (
		id BIGSERIAL PRIMARY KEY,
		job_id BIGINT NOT NULL UNIQUE REFERENCES jobs(id) ON DELETE CASCADE,
		regions TEXT[] NOT NULL DEFAULT '{}',
		states TEXT[] NOT NULL DEFAULT '{}',
		specialisations TEXT[] NOT NULL DEFAULT '{}',
		purchase_type TEXT NOT NULL DEFAULT '',
		property_type TEXT NOT NULL DEFAULT '',
		journey_stage TEXT NOT NULL DEFAULT '',
		budget_min BIGINT NOT NULL DEFAULT 0,
		budget_max BIGINT NOT NULL DEFAULT 0,
		contact_email TEXT NOT NULL DEFAULT '',
		contact_phone TEXT NOT NULL DEFAULT '',
		selected_professionals TEXT[] NOT NULL DEFAULT '{}',
		suggested_professional_ids UUID[] NOT NULL DEFAULT '{}',
		CHECK (budget_min >= 0 AND budget_max >= budget_min)
	)`,
	`CREATE TABLE IF NOT EXISTS professionals (
		id UUID PRIMARY KEY,
		category_id INT NOT NULL REFERENCES professional_categories(id),
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		abn TEXT,
		license_number TEXT,
		company_name TEXT,
		regions TEXT[] NOT NULL DEFAULT '{}',
		states TEXT[] NOT NULL DEFAULT '{}',
		specialisations TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_professionals_category ON professionals (category_id)`,
	`CREATE TABLE IF NOT EXISTS job_professional_links (
		job_detail_id BIGINT NOT NULL REFERENCES job_details(id) ON DELETE CASCADE,
		professional_id UUID NOT NULL REFERENCES professionals(id) ON DELETE CASCADE,
		selection_date TIMESTAMPTZ NOT NULL,
		assigned_date TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (job_detail_id, professional_id)
	)`,
}

// EnsureSchema creates any missing tables. Statements are idempotent so the
// bootstrap can run on every start.
func EnsureSchema(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
