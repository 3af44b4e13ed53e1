package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

// User is a registered account, either a candidate applying to jobs or a
// recruiter posting them. The role decides which routes the account may call.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	Company      string    `json:"company,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
