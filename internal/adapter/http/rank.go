package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/adapter/repository"
	"jobportal/internal/domain"
)

const rankTopN = 5

type rankReq struct {
	JobID     string   `json:"jobId"`
	ResumeIDs []string `json:"resumeIds"`
}

// RankTop returns a job's top candidates from already persisted scores.
// Optionally restricted to an explicit resume subset. Read-only.
func (h *Handler) RankTop(c *fiber.Ctx) error {
	var req rankReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "jobId is required")
	}

	var resumeIDs []uuid.UUID
	for _, raw := range req.ResumeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return errJSON(c, fiber.StatusBadRequest, "invalid resume id: "+raw)
		}
		resumeIDs = append(resumeIDs, id)
	}

	job, err := h.jobs.GetJob(c.Context(), jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, fiber.StatusNotFound, "Job not found")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	ranked, err := h.apps.RankByJob(c.Context(), jobID, resumeIDs)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(ranked) > rankTopN {
		ranked = ranked[:rankTopN]
	}
	if ranked == nil {
		ranked = []domain.RankedApplication{}
	}
	return c.JSON(fiber.Map{
		"jobId":    job.ID,
		"jobTitle": job.Title,
		"top":      ranked,
	})
}

// RankAll returns every ranked application for a job.
func (h *Handler) RankAll(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid job id")
	}
	if _, err := h.jobs.GetJob(c.Context(), jobID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, fiber.StatusNotFound, "Job not found")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	ranked, err := h.apps.RankByJob(c.Context(), jobID, nil)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	if ranked == nil {
		ranked = []domain.RankedApplication{}
	}
	return c.JSON(ranked)
}
