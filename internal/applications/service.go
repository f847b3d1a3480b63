package applications

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for applications.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create records a new application in the applied state.
func (s *Service) Create(ctx context.Context, candidateID, jobID string) (Application, error) {
	if candidateID == "" || jobID == "" {
		return Application{}, errors.New("candidateID and jobID are required")
	}
	app := Application{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		JobID:       jobID,
		Status:      StatusApplied,
		AppliedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// Get returns an application by ID.
func (s *Service) Get(ctx context.Context, applicationID string) (Application, error) {
	if applicationID == "" {
		return Application{}, errors.New("applicationID is required")
	}
	return s.Repo.GetByID(ctx, applicationID)
}

// ListByCandidate returns all applications filed by a candidate, newest first.
func (s *Service) ListByCandidate(ctx context.Context, candidateID string) ([]Application, error) {
	if candidateID == "" {
		return nil, errors.New("candidateID is required")
	}
	return s.Repo.ListByCandidate(ctx, candidateID)
}

// UpdateStatus moves an application to a new lifecycle status.
func (s *Service) UpdateStatus(ctx context.Context, applicationID, status, notes string) error {
	if applicationID == "" {
		return errors.New("applicationID is required")
	}
	if !ValidStatus(status) {
		return errors.New("unknown application status: " + status)
	}
	return s.Repo.UpdateStatus(ctx, applicationID, status, notes)
}
