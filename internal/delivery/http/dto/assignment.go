package dto

import "github.com/google/uuid"

type FinalizeRequest struct {
	ProfessionalID uuid.UUID `json:"professional_id"`
}

type FinalizeResponse struct {
	JobID          int64     `json:"job_id"`
	ProfessionalID uuid.UUID `json:"professional_id"`
	Assigned       bool      `json:"assigned"`
}
