package interviews

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "interview not found" }

type Repo interface {
	Create(ctx context.Context, iv Interview) error
	GetByID(ctx context.Context, interviewID string) (Interview, error)
	List(ctx context.Context) ([]Interview, error)
	UpdateStatus(ctx context.Context, interviewID, status, notes string) error
}
