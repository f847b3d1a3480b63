package applications

import "time"

const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusInterviewed = "interviewed"
	StatusSelected    = "selected"
	StatusRejected    = "rejected"
	StatusOnHold      = "on-hold"
)

type Application struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	JobID       string    `json:"jobId"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	AppliedAt   time.Time `json:"appliedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidStatus reports whether status is a known application lifecycle status.
func ValidStatus(status string) bool {
	switch status {
	case StatusApplied, StatusShortlisted, StatusInterviewed, StatusSelected, StatusRejected, StatusOnHold:
		return true
	default:
		return false
	}
}
