package repository

import (
	"context"

	"prop-match/internal/database"
	"prop-match/internal/domain/professional"
)

type ProfessionalRepository interface {
	FindByCategoryIDs(ctx context.Context, categoryIDs []int) ([]professional.Professional, error)
}

type PostgresProfessionalRepository struct {
	db database.DB
}

func NewPostgresProfessionalRepository(db database.DB) *PostgresProfessionalRepository {
	return &PostgresProfessionalRepository{db: db}
}

// FindByCategoryIDs returns the candidate pool for the given categories. The
// ordering is fixed so ranking ties resolve the same way on every run.
func (r *PostgresProfessionalRepository) FindByCategoryIDs(ctx context.Context, categoryIDs []int) ([]professional.Professional, error) {
	if len(categoryIDs) == 0 {
		return []professional.Professional{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, category_id, verified, COALESCE(abn, ''), COALESCE(license_number, ''), COALESCE(company_name, ''),
		        regions, states, specialisations
		 FROM professionals
		 WHERE category_id = ANY($1)
		 ORDER BY created_at ASC, id ASC`,
		categoryIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]professional.Professional, 0)
	for rows.Next() {
		var (
			p          professional.Professional
			categoryID int
			rawStates  []string
		)
		if err := rows.Scan(&p.ID, &categoryID, &p.Verified, &p.ABN, &p.LicenseNumber, &p.CompanyName,
			&p.Regions, &rawStates, &p.Specialisations); err != nil {
			return nil, err
		}
		p.Category = professional.Category(categoryID)
		p.States = parseStates(rawStates)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
