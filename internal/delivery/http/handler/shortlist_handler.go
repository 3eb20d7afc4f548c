package handler

import (
	"errors"
	"strconv"

	"prop-match/internal/delivery/http/dto"
	"prop-match/internal/delivery/http/middleware"
	"prop-match/internal/domain/professional"
	"prop-match/internal/pkg/response"
	"prop-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ShortlistHandler struct {
	uc usecase.RankingUsecase
}

func NewShortlistHandler(uc usecase.RankingUsecase) *ShortlistHandler {
	return &ShortlistHandler{uc: uc}
}

func (h *ShortlistHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/:job_id/shortlist", h.GetShortlist)
}

func (h *ShortlistHandler) GetShortlist(c fiber.Ctx) error {
	jobID, err := strconv.ParseInt(c.Params("job_id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	groups, err := h.uc.Shortlist(c.Context(), jobID)
	if err != nil {
		return mapRankingError(err)
	}

	out := dto.ShortlistResponse{
		JobID:      jobID,
		Categories: make([]dto.CategoryShortlistResponse, 0, len(groups)),
	}
	for _, g := range groups {
		cat := dto.CategoryShortlistResponse{
			Category:   g.Category,
			Candidates: make([]dto.ShortlistCandidateResponse, 0, len(g.Candidates)),
		}
		for _, cand := range g.Candidates {
			states := make([]string, 0, len(cand.Professional.States))
			for _, st := range cand.Professional.States {
				states = append(states, st.String())
			}
			cat.Candidates = append(cat.Candidates, dto.ShortlistCandidateResponse{
				ProfessionalID: cand.Professional.ID,
				CompanyName:    cand.Professional.CompanyName,
				LicenseNumber:  cand.Professional.LicenseNumber,
				Verified:       cand.Professional.Verified,
				Regions:        cand.Professional.Regions,
				States:         states,
				Score:          cand.Score,
			})
		}
		out.Categories = append(out.Categories, cat)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapRankingError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrNoSelectedProfessionals):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Job has no selected professional categories", nil, err)
	case errors.Is(err, professional.ErrUnknownCategory):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Unknown professional category", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
