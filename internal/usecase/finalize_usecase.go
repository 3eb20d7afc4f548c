package usecase

import (
	"context"
	"errors"
	"time"

	"prop-match/internal/database"
	"prop-match/internal/domain/assignment"
	"prop-match/internal/infrastructure/cache"
	"prop-match/internal/repository"

	"github.com/google/uuid"
)

type FinalizeUsecase interface {
	Finalize(ctx context.Context, jobID int64, professionalID uuid.UUID) (bool, error)
}

type Finalizer struct {
	db          database.DB
	jobs        repository.JobRepository
	assignments repository.AssignmentRepository
	cache       *cache.Redis

	now func() time.Time
}

func NewFinalizeUsecase(db database.DB, jobs repository.JobRepository, assignments repository.AssignmentRepository, c *cache.Redis) *Finalizer {
	return &Finalizer{db: db, jobs: jobs, assignments: assignments, cache: c, now: time.Now}
}

// Finalize records the chosen professional for a job and shrinks the job's
// suggestion list, in one transaction with the job row locked. A missing job
// is a soft failure (false, nil); storage errors propagate. Every occurrence
// of the professional id is removed from the suggestion list.
func (u *Finalizer) Finalize(ctx context.Context, jobID int64, professionalID uuid.UUID) (bool, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	j, err := u.jobs.FindByIDForUpdate(ctx, tx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return false, nil
		}
		return false, err
	}

	now := u.now().UTC()
	a := assignment.Assignment{
		JobDetailID:    j.Detail.ID,
		ProfessionalID: professionalID,
		SelectionDate:  now,
		AssignedDate:   now,
	}
	if err := u.assignments.CreateInTx(ctx, tx, a); err != nil {
		return false, err
	}

	j.Detail.RemoveSuggestedProfessional(professionalID)
	if err := u.jobs.UpdateSuggestedProfessionals(ctx, tx, j.Detail.ID, j.Detail.SuggestedProfessionalIDs); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	committed = true

	_ = u.cache.Delete(ctx, cache.ShortlistKey(jobID))
	return true, nil
}
