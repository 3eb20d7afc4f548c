package seeder

import (
	"context"

	"prop-match/internal/database"
	"prop-match/internal/domain/professional"
)

type CategorySeeder struct{}

func (CategorySeeder) Name() string { return "professional_categories" }

func (CategorySeeder) Run(ctx context.Context, db database.DB) error {
	for _, cat := range professional.Categories() {
		_, err := db.Exec(ctx,
			`INSERT INTO professional_categories (id, name) VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
			int(cat), cat.String(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
