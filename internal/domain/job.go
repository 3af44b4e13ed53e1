package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job employment types.
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeRemote     = "remote"
)

// Job is a posting created by a recruiter. Read-heavy after creation; the
// description and skills feed both scoring strategies.
type Job struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Company             string     `json:"company"`
	Location            string     `json:"location"`
	Type                string     `json:"type"`
	SalaryMin           *int       `json:"salary_min,omitempty"`
	SalaryMax           *int       `json:"salary_max,omitempty"`
	Skills              []string   `json:"skills"`
	Experience          string     `json:"experience"` // entry, mid, senior, lead (free text in practice)
	Requirements        string     `json:"requirements,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	RecruiterID         uuid.UUID  `json:"recruiter_id"`
	CreatedAt           time.Time  `json:"created_at"`
}

// ValidJobType reports whether t is one of the accepted employment types.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}
