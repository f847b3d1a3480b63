package interviews

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hanwat12/Ats-Slrd/internal/applications"
	"github.com/hanwat12/Ats-Slrd/internal/jobs"
	"github.com/hanwat12/Ats-Slrd/internal/users"
)

// Service contains business logic for interviews.
type Service struct {
	Repo         Repo
	Users        users.Repo
	Jobs         jobs.Repo
	Applications applications.Repo
}

// Schedule records a new interview for an application.
func (s *Service) Schedule(ctx context.Context, applicationID, interviewerName string, scheduledDate time.Time) (Interview, error) {
	if applicationID == "" {
		return Interview{}, errors.New("applicationID is required")
	}

	app, err := s.Applications.GetByID(ctx, applicationID)
	if err != nil {
		return Interview{}, err
	}

	iv := Interview{
		ID:              uuid.NewString(),
		ApplicationID:   app.ID,
		CandidateID:     app.CandidateID,
		JobID:           app.JobID,
		InterviewerName: interviewerName,
		ScheduledDate:   scheduledDate,
		Status:          StatusScheduled,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, iv); err != nil {
		return Interview{}, err
	}
	return iv, nil
}

// Get returns an interview by ID.
func (s *Service) Get(ctx context.Context, interviewID string) (Interview, error) {
	if interviewID == "" {
		return Interview{}, errors.New("interviewID is required")
	}
	return s.Repo.GetByID(ctx, interviewID)
}

// GetWithDetails returns one interview decorated with candidate, job, and application.
func (s *Service) GetWithDetails(ctx context.Context, interviewID string) (Detail, error) {
	iv, err := s.Get(ctx, interviewID)
	if err != nil {
		return Detail{}, err
	}
	return s.decorate(ctx, iv)
}

// ListWithDetails returns all interviews decorated with their related records,
// newest scheduled first. Missing related records leave zero values in place
// rather than failing the whole listing.
func (s *Service) ListWithDetails(ctx context.Context) ([]Detail, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Detail, 0, len(list))
	for _, iv := range list {
		detail, err := s.decorate(ctx, iv)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

// UpdateStatus moves an interview to a new status with accompanying notes.
// Any prior status is accepted.
func (s *Service) UpdateStatus(ctx context.Context, interviewID, status, notes string) error {
	if interviewID == "" {
		return errors.New("interviewID is required")
	}
	if !ValidStatus(status) {
		return errors.New("unknown interview status: " + status)
	}
	return s.Repo.UpdateStatus(ctx, interviewID, status, notes)
}

func (s *Service) decorate(ctx context.Context, iv Interview) (Detail, error) {
	detail := Detail{Interview: iv}

	if candidate, err := s.Users.GetByID(ctx, iv.CandidateID); err == nil {
		detail.Candidate = candidate
	} else if !errors.Is(err, users.ErrNotFound) {
		return Detail{}, err
	}

	if job, err := s.Jobs.GetByID(ctx, iv.JobID); err == nil {
		detail.Job = job
	} else if !errors.Is(err, jobs.ErrNotFound) {
		return Detail{}, err
	}

	if app, err := s.Applications.GetByID(ctx, iv.ApplicationID); err == nil {
		detail.Application = app
	} else if !errors.Is(err, applications.ErrNotFound) {
		return Detail{}, err
	}

	return detail, nil
}
