package assignment

import (
	"time"

	"github.com/google/uuid"
)

// Assignment links a job detail to the professional finalised for it. Rows are
// insert-only; there is no update path.
type Assignment struct {
	JobDetailID    int64
	ProfessionalID uuid.UUID
	SelectionDate  time.Time
	AssignedDate   time.Time
}
