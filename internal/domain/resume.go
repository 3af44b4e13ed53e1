package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExtractedFields is the structured candidate data pulled out of a resume.
// The heuristic extractor fills name/email/phone/summary; the AI extraction
// path may overwrite and add skills, experience, education and location.
// Every field is optional.
type ExtractedFields struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	Summary         string   `json:"summary,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears float64  `json:"experience,omitempty"`
	Education       string   `json:"education,omitempty"`
	Location        string   `json:"location,omitempty"`
}

// ScoreRecord is one persisted outcome of a scoring attempt for a
// (resume, job) pair. Immutable once appended to a resume's history.
// Score is nil only when the upstream scorer failed outright.
type ScoreRecord struct {
	JobID             uuid.UUID `json:"jobId"`
	Score             *int      `json:"score"`
	Rationale         []string  `json:"rationale"`
	RecommendedAction string    `json:"recommendedAction"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ClampScore bounds a raw score to the [0,100] range every ScoreRecord
// must satisfy.
func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Resume is one uploaded resume owned by a candidate. Scores is the
// append-only scoring history, insertion order chronological.
type Resume struct {
	ID          uuid.UUID       `json:"id"`
	CandidateID uuid.UUID       `json:"candidate_id"`
	Filename    string          `json:"filename"`
	StoragePath string          `json:"storage_path,omitempty"`
	RawText     string          `json:"-"`
	Extracted   ExtractedFields `json:"extracted"`
	Scores      []ScoreRecord   `json:"scores"`
	CreatedAt   time.Time       `json:"created_at"`
}
