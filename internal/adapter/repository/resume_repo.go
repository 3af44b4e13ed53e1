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

// ResumeRepo persists resumes and their append-only score histories.
type ResumeRepo struct {
	pool *pgxpool.Pool
}

func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

func (r *ResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	extracted, err := json.Marshal(resume.Extracted)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, candidate_id, filename, storage_path, raw_text, extracted, scores, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,'[]'::jsonb,$7)`,
		resume.ID, resume.CandidateID, resume.Filename, resume.StoragePath, resume.RawText, extracted, resume.CreatedAt)
	return err
}

func (r *ResumeRepo) GetResume(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, candidate_id, filename, storage_path, raw_text, extracted, scores, created_at
		FROM resumes WHERE id = $1`, id)
	return scanResume(row)
}

// AppendScore appends one record to the score history in a single UPDATE,
// so concurrent scorings of the same resume serialize at the row and no
// append is lost.
func (r *ResumeRepo) AppendScore(ctx context.Context, resumeID uuid.UUID, rec domain.ScoreRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `UPDATE resumes SET scores = scores || $2::jsonb WHERE id = $1`, resumeID, b)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume %s: %w", resumeID, ErrNotFound)
	}
	return nil
}

func (r *ResumeRepo) UpdateExtracted(ctx context.Context, resumeID uuid.UUID, fields domain.ExtractedFields) error {
	b, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `UPDATE resumes SET extracted = $2 WHERE id = $1`, resumeID, b)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume %s: %w", resumeID, ErrNotFound)
	}
	return nil
}

// ListRecent returns the newest resumes without their raw text.
func (r *ResumeRepo) ListRecent(ctx context.Context, limit int) ([]domain.Resume, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, candidate_id, filename, storage_path, '', extracted, scores, created_at
		FROM resumes ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *resume)
	}
	return out, rows.Err()
}

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var resume domain.Resume
	var extracted, scores []byte
	err := row.Scan(&resume.ID, &resume.CandidateID, &resume.Filename, &resume.StoragePath,
		&resume.RawText, &extracted, &scores, &resume.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(extracted, &resume.Extracted); err != nil {
		return nil, fmt.Errorf("decode extracted: %w", err)
	}
	if err := json.Unmarshal(scores, &resume.Scores); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	return &resume, nil
}
