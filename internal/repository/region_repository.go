package repository

import (
	"context"
	"database/sql"
	"errors"

	"prop-match/internal/database"
	"prop-match/internal/domain/location"

	"github.com/jackc/pgx/v5"
)

type RegionRepository interface {
	StateForRegion(ctx context.Context, region string) (location.State, error)
}

type PostgresRegionRepository struct {
	db database.DB
}

func NewPostgresRegionRepository(db database.DB) *PostgresRegionRepository {
	return &PostgresRegionRepository{db: db}
}

// StateForRegion looks up the state a region belongs to. An unknown region is
// not an error; it resolves to the unspecified state and callers treat it as
// "no signal".
func (r *PostgresRegionRepository) StateForRegion(ctx context.Context, region string) (location.State, error) {
	var raw string
	row := r.db.QueryRow(ctx, `SELECT state FROM regions WHERE name = $1`, region)
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return location.StateUnspecified, nil
		}
		return location.StateUnspecified, err
	}

	st, err := location.ParseState(raw)
	if err != nil {
		return location.StateUnspecified, nil
	}
	return st, nil
}
