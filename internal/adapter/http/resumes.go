package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/adapter/repository"
	"jobportal/internal/domain"
)

const defaultResumeListLimit = 50

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultResumeListLimit)
	if limit < 1 || limit > 200 {
		limit = defaultResumeListLimit
	}
	resumes, err := h.resumes.ListRecent(c.Context(), limit)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	if resumes == nil {
		resumes = []domain.Resume{}
	}
	return c.JSON(resumes)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid resume id")
	}
	resume, err := h.resumes.GetResume(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, fiber.StatusNotFound, "Resume not found")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(resume)
}
