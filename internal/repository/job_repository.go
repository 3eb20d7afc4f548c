package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"prop-match/internal/database"
	"prop-match/internal/domain/job"
	"prop-match/internal/domain/location"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindByID(ctx context.Context, id int64) (*job.Job, error)
	FindByIDForUpdate(ctx context.Context, tx database.Tx, id int64) (*job.Job, error)
	UpdateSuggestedProfessionals(ctx context.Context, tx database.Tx, detailID int64, ids []uuid.UUID) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobWithDetailQuery = `SELECT j.id, j.customer_id, j.category, j.title, j.details, j.status, j.created_at, j.updated_at,
	        d.id, d.regions, d.states, d.specialisations, d.purchase_type, d.property_type, d.journey_stage,
	        d.budget_min, d.budget_max, d.contact_email, d.contact_phone,
	        d.selected_professionals, d.suggested_professional_ids
	 FROM jobs j
	 JOIN job_details d ON d.job_id = j.id
	 WHERE j.id = $1`

func (r *PostgresJobRepository) FindByID(ctx context.Context, id int64) (*job.Job, error) {
	return scanJobWithDetail(r.db.QueryRow(ctx, jobWithDetailQuery, id))
}

// FindByIDForUpdate loads the job inside tx with its row locked, serializing
// concurrent finalisations against the same job.
func (r *PostgresJobRepository) FindByIDForUpdate(ctx context.Context, tx database.Tx, id int64) (*job.Job, error) {
	return scanJobWithDetail(tx.QueryRow(ctx, jobWithDetailQuery+` FOR UPDATE OF j`, id))
}

func (r *PostgresJobRepository) UpdateSuggestedProfessionals(ctx context.Context, tx database.Tx, detailID int64, ids []uuid.UUID) error {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	rowsAffected, err := tx.Exec(ctx,
		`UPDATE job_details SET suggested_professional_ids = $1 WHERE id = $2`,
		ids, detailID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func scanJobWithDetail(row database.Row) (*job.Job, error) {
	var (
		j          job.Job
		d          job.Detail
		rawStates  []string
		rawRegions []string
		rawSpecs   []string
	)
	err := row.Scan(
		&j.ID, &j.CustomerID, &j.Category, &j.Title, &j.Details, &j.Status, &j.CreatedAt, &j.UpdatedAt,
		&d.ID, &rawRegions, &rawStates, &rawSpecs, &d.PurchaseType, &d.PropertyType, &d.JourneyStage,
		&d.BudgetMin, &d.BudgetMax, &d.ContactEmail, &d.ContactPhone,
		&d.SelectedProfessionals, &d.SuggestedProfessionalIDs,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	d.JobID = j.ID
	d.Regions = rawRegions
	d.Specialisations = rawSpecs
	d.States = parseStates(rawStates)
	j.Detail = &d
	return &j, nil
}

func parseStates(raw []string) []location.State {
	out := make([]location.State, 0, len(raw))
	for _, s := range raw {
		st, err := location.ParseState(s)
		if err != nil {
			// stored reference data should always parse; skip anything stale
			log.Printf("[repository] skipping unknown state %q", s)
			continue
		}
		out = append(out, st)
	}
	return out
}
