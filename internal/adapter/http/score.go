package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/adapter/repository"
)

type scoreReq struct {
	ResumeID string `json:"resumeId"`
	JobID    string `json:"jobId"`
}

// ScoreResume runs the AI scoring path for an existing (resume, job) pair
// and appends the outcome to the resume's history. The response carries
// the persisted record even when the model failed or was overridden by the
// keyword fallback.
func (h *Handler) ScoreResume(c *fiber.Ctx) error {
	var req scoreReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "resumeId is required")
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "jobId is required")
	}

	result, err := h.scorer.ScoreResumeForJob(c.Context(), resumeID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, fiber.StatusNotFound, "Resume or job not found")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}
