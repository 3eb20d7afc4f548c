package seeder

import (
	"context"
	"fmt"
	"log"

	"prop-match/internal/database"
)

// RunAll bootstraps the schema and runs every seeder in order.
func RunAll(ctx context.Context, db database.DB) error {
	if err := EnsureSchema(ctx, db); err != nil {
		return err
	}

	seeders := []Seeder{
		CategorySeeder{},
		RegionSeeder{},
		AdminSeeder{},
	}
	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
		log.Printf("[Seeder] %s done", s.Name())
	}
	return nil
}
