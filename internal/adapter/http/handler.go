package http

import (
	"github.com/gofiber/fiber/v2"

	"jobportal/internal/adapter/repository"
	"jobportal/internal/config"
	"jobportal/internal/usecase"
)

// Handler wires the portal's routes to the repositories and the scoring
// component.
type Handler struct {
	cfg      *config.Config
	users    *repository.UserRepo
	jobs     *repository.JobRepo
	resumes  *repository.ResumeRepo
	apps     *repository.ApplicationRepo
	scorer   *usecase.Scorer
	strategy usecase.Strategy
}

func NewHandler(cfg *config.Config, users *repository.UserRepo, jobs *repository.JobRepo,
	resumes *repository.ResumeRepo, apps *repository.ApplicationRepo, scorer *usecase.Scorer) *Handler {
	return &Handler{
		cfg:      cfg,
		users:    users,
		jobs:     jobs,
		resumes:  resumes,
		apps:     apps,
		scorer:   scorer,
		strategy: scorer.StrategyByName(cfg.RankingStrategy),
	}
}

// RegisterRoutes mounts the API. Recruiter-only routes are guarded by role;
// the rank endpoints are read-only and open to the UI.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)

	jobs := api.Group("/jobs")
	jobs.Post("/", h.RequireAuth, h.RequireRecruiter, h.CreateJob)
	jobs.Get("/", h.ListJobs)
	jobs.Get("/:id", h.GetJob)

	apps := api.Group("/applications", h.RequireAuth)
	apps.Post("/upload", h.UploadAndApply)
	apps.Post("/", h.Apply)
	apps.Get("/job/:jobId", h.RequireRecruiter, h.ListApplicationsByJob)
	apps.Get("/candidate", h.ListMyApplications)
	apps.Put("/:id/status", h.RequireRecruiter, h.UpdateApplicationStatus)

	api.Post("/score", h.ScoreResume)

	rank := api.Group("/rank")
	rank.Post("/", h.RankTop)
	rank.Get("/:jobId", h.RankAll)

	resumes := api.Group("/resumes", h.RequireAuth)
	resumes.Get("/", h.ListResumes)
	resumes.Get("/:id", h.GetResume)
}

func errJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
