package queries

import "context"

type Repo interface {
	Create(ctx context.Context, q Query) error
	GetByID(ctx context.Context, queryID string) (Query, error)
	ListByUser(ctx context.Context, userID string) ([]Query, error)
	UpdateStatus(ctx context.Context, queryID, status string) error
	AddResponse(ctx context.Context, resp Response) error
	MarkResponseRead(ctx context.Context, responseID string) error
}
