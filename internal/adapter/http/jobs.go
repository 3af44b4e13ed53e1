package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/adapter/repository"
	"jobportal/internal/domain"
)

type createJobReq struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Company             string   `json:"company"`
	Location            string   `json:"location"`
	Type                string   `json:"type"`
	SalaryMin           *int     `json:"salaryMin"`
	SalaryMax           *int     `json:"salaryMax"`
	Skills              []string `json:"skills"`
	Experience          string   `json:"experience"`
	Requirements        string   `json:"requirements"`
	ApplicationDeadline string   `json:"applicationDeadline"`
}

func (h *Handler) CreateJob(c *fiber.Ctx) error {
	var req createJobReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" {
		return errJSON(c, fiber.StatusBadRequest, "title is required")
	}
	if req.Type == "" {
		req.Type = domain.JobTypeFullTime
	}
	if !domain.ValidJobType(req.Type) {
		return errJSON(c, fiber.StatusBadRequest, "invalid job type")
	}

	job := &domain.Job{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Skills:       req.Skills,
		Experience:   req.Experience,
		Requirements: req.Requirements,
		RecruiterID:  callerID(c),
		CreatedAt:    time.Now(),
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}
	if req.ApplicationDeadline != "" {
		if deadline, err := time.Parse(time.RFC3339, req.ApplicationDeadline); err == nil {
			job.ApplicationDeadline = &deadline
		}
	}

	if err := h.jobs.Create(c.Context(), job); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(job)
}

func (h *Handler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobs.List(c.Context())
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return c.JSON(jobs)
}

func (h *Handler) GetJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid job id")
	}
	job, err := h.jobs.GetJob(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, fiber.StatusNotFound, "Job not found")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(job)
}
