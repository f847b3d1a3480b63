package interviews

import (
	"time"

	"github.com/hanwat12/Ats-Slrd/internal/applications"
	"github.com/hanwat12/Ats-Slrd/internal/jobs"
	"github.com/hanwat12/Ats-Slrd/internal/users"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Interview struct {
	ID              string    `json:"id"`
	ApplicationID   string    `json:"applicationId"`
	CandidateID     string    `json:"candidateId"`
	JobID           string    `json:"jobId"`
	InterviewerName string    `json:"interviewerName"`
	ScheduledDate   time.Time `json:"scheduledDate"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Detail is an interview decorated with its candidate, job, and application.
type Detail struct {
	Interview
	Candidate   users.User               `json:"candidate"`
	Job         jobs.Job                 `json:"job"`
	Application applications.Application `json:"application"`
}

// ValidStatus reports whether status is a known interview status.
func ValidStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
