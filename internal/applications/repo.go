package applications

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "application not found" }

type Repo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, applicationID string) (Application, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Application, error)
	UpdateStatus(ctx context.Context, applicationID, status, notes string) error
}
