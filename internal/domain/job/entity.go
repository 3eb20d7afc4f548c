package job

import (
	"time"

	"prop-match/internal/domain/location"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Category string

const (
	CategoryBuy  Category = "Buy"
	CategorySell Category = "Sell"
)

type Job struct {
	ID         int64
	CustomerID int64
	Category   Category
	Title      string
	Details    string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Detail *Detail
}

// Detail carries the matching-relevant payload of a job. Regions, states and
// specialisations are optional; an empty list means "not specified", never
// "match anything".
type Detail struct {
	ID                       int64
	JobID                    int64
	Regions                  []string
	States                   []location.State
	Specialisations          []string
	PurchaseType             string
	PropertyType             string
	JourneyStage             string
	BudgetMin                int64
	BudgetMax                int64
	ContactEmail             string
	ContactPhone             string
	SelectedProfessionals    []string
	SuggestedProfessionalIDs []uuid.UUID
}

// RemoveSuggestedProfessional drops every occurrence of id from the suggestion
// list and reports how many entries were removed. All suggestion-list surgery
// goes through here so the aggregate stays the single mutation point.
func (d *Detail) RemoveSuggestedProfessional(id uuid.UUID) int {
	if d == nil {
		return 0
	}
	kept := d.SuggestedProfessionalIDs[:0]
	removed := 0
	for _, s := range d.SuggestedProfessionalIDs {
		if s == id {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	d.SuggestedProfessionalIDs = kept
	return removed
}
