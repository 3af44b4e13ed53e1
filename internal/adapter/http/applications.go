package http

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/adapter/repository"
	"jobportal/internal/domain"
	"jobportal/internal/usecase"
	"jobportal/pkg/infrastructure"
)

const maxResumeSize = 5 << 20 // 5MB

// UploadAndApply is the main intake endpoint: multipart resume upload plus
// a jobId field. It decodes the file, extracts candidate fields, stores the
// resume, scores it with the configured strategy and records the
// application in one request.
func (h *Handler) UploadAndApply(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.FormValue("jobId"))
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "jobId is required")
	}

	job, err := h.jobs.GetJob(c.Context(), jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, fiber.StatusNotFound, "Job not found")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	candidateID := callerID(c)
	if exists, err := h.apps.Exists(c.Context(), jobID, candidateID); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	} else if exists {
		return errJSON(c, fiber.StatusBadRequest, "You have already applied for this job")
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "resume file is required")
	}
	if fileHeader.Size > maxResumeSize {
		return errJSON(c, fiber.StatusBadRequest, "resume file exceeds the 5MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "unable to read resume file")
	}
	data, err := infrastructure.ReadAll(file)
	file.Close()
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "unable to read resume file")
	}

	mime := fileHeader.Header.Get("Content-Type")
	rawText, err := infrastructure.DecodeResume(mime, data)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, err.Error())
	}

	resume := &domain.Resume{
		ID:          uuid.New(),
		CandidateID: candidateID,
		Filename:    fileHeader.Filename,
		RawText:     rawText,
		Extracted:   h.extractFields(c, rawText),
		CreatedAt:   time.Now(),
	}
	resume.StoragePath, err = h.storeUpload(resume.ID, fileHeader.Filename, data)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.resumes.Create(c.Context(), resume); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	record := h.strategy.Evaluate(c.Context(), job, resume)
	// The AI strategy's outcome also belongs to the resume's history; the
	// deterministic formula is recomputable and only lives on the row.
	if h.strategy.Name() == "ai" {
		if err := h.resumes.AppendScore(c.Context(), resume.ID, record); err != nil {
			return errJSON(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	app := &domain.Application{
		ID:                uuid.New(),
		JobID:             jobID,
		ResumeID:          resume.ID,
		CandidateID:       candidateID,
		Status:            domain.StatusApplied,
		ATSScore:          record.Score,
		Rationale:         record.Rationale,
		RecommendedAction: record.RecommendedAction,
		AppliedAt:         time.Now(),
	}
	if err := h.apps.Create(c.Context(), app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return errJSON(c, fiber.StatusBadRequest, "You have already applied for this job")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message":           "Application submitted successfully",
		"applicationId":     app.ID,
		"resumeId":          resume.ID,
		"atsScore":          record.Score,
		"rationale":         record.Rationale,
		"recommendedAction": record.RecommendedAction,
		"extracted":         resume.Extracted,
	})
}

// extractFields runs the heuristic pass and lets the AI extraction refine
// it when available. AI failures keep the heuristic result.
func (h *Handler) extractFields(c *fiber.Ctx, rawText string) domain.ExtractedFields {
	fields := usecase.ExtractFields(rawText)
	if ai := h.scorer.ExtractFieldsAI(c.Context(), rawText); ai != nil {
		if ai.Name != "" {
			fields.Name = &ai.Name
		}
		if ai.Email != "" {
			fields.Email = &ai.Email
		}
		if ai.Phone != "" {
			fields.Phone = &ai.Phone
		}
		if len(ai.Skills) > 0 {
			fields.Skills = ai.Skills
		}
		if ai.ExperienceYears > 0 {
			fields.ExperienceYears = ai.ExperienceYears
		}
		if ai.Education != "" {
			fields.Education = ai.Education
		}
		if ai.Location != "" {
			fields.Location = ai.Location
		}
	}
	return fields
}

func (h *Handler) storeUpload(resumeID uuid.UUID, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(h.cfg.UploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	path := filepath.Join(h.cfg.UploadsDir, resumeID.String()+filepath.Ext(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return path, nil
}

type applyReq struct {
	JobID    string `json:"jobId"`
	ResumeID string `json:"resumeId"`
}

// Apply records a manual application that reuses an already uploaded
// resume. No scoring runs; the row is marked for manual review.
func (h *Handler) Apply(c *fiber.Ctx) error {
	var req applyReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "jobId is required")
	}
	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "resumeId is required")
	}

	if _, err := h.jobs.GetJob(c.Context(), jobID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, fiber.StatusNotFound, "Job not found")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	resume, err := h.resumes.GetResume(c.Context(), resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, fiber.StatusNotFound, "Resume not found")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	candidateID := callerID(c)
	if resume.CandidateID != candidateID {
		return errJSON(c, fiber.StatusForbidden, "Resume belongs to another candidate")
	}

	score := 0
	app := &domain.Application{
		ID:                uuid.New(),
		JobID:             jobID,
		ResumeID:          resumeID,
		CandidateID:       candidateID,
		Status:            domain.StatusApplied,
		ATSScore:          &score,
		Rationale:         []string{"Manual application"},
		RecommendedAction: "Review manually",
		AppliedAt:         time.Now(),
	}
	if err := h.apps.Create(c.Context(), app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return errJSON(c, fiber.StatusBadRequest, "You have already applied for this job")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message":       "Application submitted successfully",
		"applicationId": app.ID,
	})
}

// ListApplicationsByJob gives a recruiter a job's applicants, best score
// first.
func (h *Handler) ListApplicationsByJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid job id")
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

func (h *Handler) ListMyApplications(c *fiber.Ctx) error {
	apps, err := h.apps.ListByCandidate(c.Context(), callerID(c))
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return c.JSON(apps)
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid application id")
	}
	var req statusReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !domain.ValidStatus(req.Status) {
		return errJSON(c, fiber.StatusBadRequest, "Invalid status")
	}

	app, err := h.apps.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, fiber.StatusNotFound, "Application not found")
		}
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(app)
}
