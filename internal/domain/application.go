package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application lifecycle statuses.
const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusInterview   = "interview"
	StatusRejected    = "rejected"
)

// Application links one job with one candidate's resume and carries a
// denormalized copy of the latest ATS score. At most one application may
// exist per (job, candidate) pair; rows are never deleted, only the status
// moves.
type Application struct {
	ID                uuid.UUID `json:"id"`
	JobID             uuid.UUID `json:"job_id"`
	ResumeID          uuid.UUID `json:"resume_id"`
	CandidateID       uuid.UUID `json:"candidate_id"`
	Status            string    `json:"status"`
	ATSScore          *int      `json:"ats_score"`
	Rationale         []string  `json:"rationale"`
	RecommendedAction string    `json:"recommended_action"`
	AppliedAt         time.Time `json:"applied_at"`
}

// ValidStatus reports whether s is an accepted application status.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusInterview, StatusRejected:
		return true
	}
	return false
}

// RankedApplication is one row of the ranking query: an application joined
// with its resume, ordered by score descending.
type RankedApplication struct {
	ApplicationID     uuid.UUID       `json:"applicationId"`
	ResumeID          uuid.UUID       `json:"resumeId"`
	Filename          string          `json:"filename"`
	Score             *int            `json:"score"`
	Rationale         []string        `json:"rationale"`
	RecommendedAction string          `json:"recommendedAction"`
	Status            string          `json:"status"`
	AppliedAt         time.Time       `json:"appliedAt"`
	Extracted         ExtractedFields `json:"extracted"`
}
