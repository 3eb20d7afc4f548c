package repository

import (
	"context"
	"time"

	"prop-match/internal/database"
	"prop-match/internal/domain/assignment"
)

type AssignmentRepository interface {
	CreateInTx(ctx context.Context, tx database.Tx, a assignment.Assignment) error
}

type PostgresAssignmentRepository struct {
	db database.DB
}

func NewPostgresAssignmentRepository(db database.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

// CreateInTx inserts the assignment inside the caller's transaction so the
// record and the job's suggestion-list shrink commit together.
func (r *PostgresAssignmentRepository) CreateInTx(ctx context.Context, tx database.Tx, a assignment.Assignment) error {
	if a.SelectionDate.IsZero() {
		a.SelectionDate = time.Now().UTC()
	}
	if a.AssignedDate.IsZero() {
		a.AssignedDate = time.Now().UTC()
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO job_professional_links (job_detail_id, professional_id, selection_date, assigned_date)
		 VALUES ($1, $2, $3, $4)`,
		a.JobDetailID, a.ProfessionalID, a.SelectionDate, a.AssignedDate,
	)
	return err
}
