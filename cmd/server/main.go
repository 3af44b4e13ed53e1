package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	httpadapter "jobportal/internal/adapter/http"
	"jobportal/internal/adapter/repository"
	"jobportal/internal/config"
	"jobportal/internal/infrastructure/migration"
	"jobportal/internal/usecase"
	"jobportal/pkg/ai"
	infra "jobportal/pkg/infrastructure"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	users := repository.NewUserRepo(pool)
	jobs := repository.NewJobRepo(pool)
	resumes := repository.NewResumeRepo(pool)
	apps := repository.NewApplicationRepo(pool)

	llm := ai.NewClient(cfg.GeminiURL, cfg.GeminiAPIKey)
	scorer := usecase.NewScorer(resumes, jobs, llm)

	app := fiber.New(fiber.Config{
		BodyLimit: 8 << 20,
	})

	h := httpadapter.NewHandler(cfg, users, jobs, resumes, apps, scorer)
	h.RegisterRoutes(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
