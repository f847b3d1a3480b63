package feedback

import "context"

type Repo interface {
	Create(ctx context.Context, fb Feedback) error
	GetByInterview(ctx context.Context, interviewID string) (Feedback, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Feedback, error)
}
