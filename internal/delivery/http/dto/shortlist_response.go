package dto

import "github.com/google/uuid"

type ShortlistCandidateResponse struct {
	ProfessionalID uuid.UUID `json:"professional_id"`
	CompanyName    string    `json:"company_name"`
	LicenseNumber  string    `json:"license_number"`
	Verified       bool      `json:"verified"`
	Regions        []string  `json:"regions"`
	States         []string  `json:"states"`
	Score          int       `json:"score"`
}

type CategoryShortlistResponse struct {
	Category   string                       `json:"category"`
	Candidates []ShortlistCandidateResponse `json:"candidates"`
}

type ShortlistResponse struct {
	JobID      int64                       `json:"job_id"`
	Categories []CategoryShortlistResponse `json:"categories"`
}
