package handler

import (
	"strconv"

	"prop-match/internal/delivery/http/dto"
	"prop-match/internal/delivery/http/middleware"
	"prop-match/internal/pkg/response"
	"prop-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	uc usecase.FinalizeUsecase
}

func NewAssignmentHandler(uc usecase.FinalizeUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

func (h *AssignmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Post("/:job_id/assignments", h.Finalize)
}

func (h *AssignmentHandler) Finalize(c fiber.Ctx) error {
	jobID, err := strconv.ParseInt(c.Params("job_id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req dto.FinalizeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	if req.ProfessionalID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing professional id", nil, nil)
	}

	ok, err := h.uc.Finalize(c.Context(), jobID, req.ProfessionalID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, nil)
	}

	out := dto.FinalizeResponse{JobID: jobID, ProfessionalID: req.ProfessionalID, Assigned: true}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
