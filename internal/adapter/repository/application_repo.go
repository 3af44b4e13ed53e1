package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"jobportal/internal/domain"
)

// ApplicationRepo stores applications in one table keyed by job_id. The
// per-job queries the portal needs are plain filters on that key.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

func (r *ApplicationRepo) Create(ctx context.Context, a *domain.Application) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO applications
		(id, job_id, resume_id, candidate_id, status, ats_score, rationale, recommended_action, applied_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.JobID, a.ResumeID, a.CandidateID, a.Status, a.ATSScore, a.Rationale, a.RecommendedAction, a.AppliedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("application for job %s by candidate %s: %w", a.JobID, a.CandidateID, ErrDuplicate)
	}
	return err
}

func (r *ApplicationRepo) Exists(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`,
		jobID, candidateID).Scan(&exists)
	return exists, err
}

func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Application, error) {
	row := r.pool.QueryRow(ctx, `UPDATE applications SET status = $2 WHERE id = $1
		RETURNING id, job_id, resume_id, candidate_id, status, ats_score, rationale, recommended_action, applied_at`,
		id, status)
	var a domain.Application
	err := row.Scan(&a.ID, &a.JobID, &a.ResumeID, &a.CandidateID, &a.Status, &a.ATSScore,
		&a.Rationale, &a.RecommendedAction, &a.AppliedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByCandidate returns a candidate's applications, newest first.
func (r *ApplicationRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, job_id, resume_id, candidate_id, status, ats_score, rationale, recommended_action, applied_at
		FROM applications WHERE candidate_id = $1 ORDER BY applied_at DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.ResumeID, &a.CandidateID, &a.Status, &a.ATSScore,
			&a.Rationale, &a.RecommendedAction, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// RankByJob returns a job's applications joined with their resumes, best
// score first. Failed scorings (null score) sort last, ties break on the
// most recent application. Pass resumeIDs to restrict the ranking to an
// explicit subset. Read-only.
func (r *ApplicationRepo) RankByJob(ctx context.Context, jobID uuid.UUID, resumeIDs []uuid.UUID) ([]domain.RankedApplication, error) {
	query := `SELECT a.id, a.resume_id, r.filename, a.ats_score, a.rationale, a.recommended_action, a.status, a.applied_at, r.extracted
		FROM applications a
		JOIN resumes r ON r.id = a.resume_id
		WHERE a.job_id = $1`
	args := []interface{}{jobID}
	if len(resumeIDs) > 0 {
		query += ` AND a.resume_id = ANY($2)`
		args = append(args, resumeIDs)
	}
	query += ` ORDER BY a.ats_score DESC NULLS LAST, a.applied_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RankedApplication
	for rows.Next() {
		var ranked domain.RankedApplication
		var extracted []byte
		if err := rows.Scan(&ranked.ApplicationID, &ranked.ResumeID, &ranked.Filename, &ranked.Score,
			&ranked.Rationale, &ranked.RecommendedAction, &ranked.Status, &ranked.AppliedAt, &extracted); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(extracted, &ranked.Extracted); err != nil {
			return nil, fmt.Errorf("decode extracted: %w", err)
		}
		out = append(out, ranked)
	}
	return out, rows.Err()
}
