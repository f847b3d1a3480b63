package resumes

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "resume not found" }

type Repo interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
}
