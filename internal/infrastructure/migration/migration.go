package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{Name: "create_users", Up: createUsers},
		{Name: "create_jobs", Up: createJobs},
		{Name: "create_resumes", Up: createResumes},
		{Name: "create_applications", Up: createApplications},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

func createUsers(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func createJobs(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT 'full-time',
			salary_min INT,
			salary_max INT,
			skills TEXT[] NOT NULL DEFAULT '{}',
			experience TEXT NOT NULL DEFAULT '',
			requirements TEXT NOT NULL DEFAULT '',
			application_deadline TIMESTAMPTZ,
			recruiter_id UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func createResumes(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			candidate_id UUID NOT NULL REFERENCES users(id),
			filename TEXT NOT NULL,
			storage_path TEXT NOT NULL DEFAULT '',
			raw_text TEXT NOT NULL DEFAULT '',
			extracted JSONB NOT NULL DEFAULT '{}'::jsonb,
			scores JSONB NOT NULL DEFAULT '[]'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func createApplications(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS applications (
			id UUID PRIMARY KEY,
			job_id UUID NOT NULL REFERENCES jobs(id),
			resume_id UUID NOT NULL REFERENCES resumes(id),
			candidate_id UUID NOT NULL REFERENCES users(id),
			status TEXT NOT NULL DEFAULT 'applied',
			ats_score INT,
			rationale TEXT[] NOT NULL DEFAULT '{}',
			recommended_action TEXT NOT NULL DEFAULT '',
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (job_id, candidate_id)
		);
		CREATE INDEX IF NOT EXISTS idx_applications_job_score ON applications (job_id, ats_score DESC);
	`)
	return err
}
