package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"jobportal/internal/domain"
)

type JobRepo struct {
	pool *pgxpool.Pool
}

func NewJobRepo(pool *pgxpool.Pool) *JobRepo {
	return &JobRepo{pool: pool}
}

func (r *JobRepo) Create(ctx context.Context, j *domain.Job) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO jobs
		(id, title, description, company, location, type, salary_min, salary_max, skills, experience, requirements, application_deadline, recruiter_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		j.ID, j.Title, j.Description, j.Company, j.Location, j.Type, j.SalaryMin, j.SalaryMax,
		j.Skills, j.Experience, j.Requirements, j.ApplicationDeadline, j.RecruiterID, j.CreatedAt)
	return err
}

func (r *JobRepo) GetJob(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, title, description, company, location, type, salary_min, salary_max, skills, experience, requirements, application_deadline, recruiter_id, created_at
		FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

// List returns all jobs, newest first.
func (r *JobRepo) List(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title, description, company, location, type, salary_min, salary_max, skills, experience, requirements, application_deadline, recruiter_id, created_at
		FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Company, &j.Location, &j.Type,
		&j.SalaryMin, &j.SalaryMax, &j.Skills, &j.Experience, &j.Requirements,
		&j.ApplicationDeadline, &j.RecruiterID, &j.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}
