package feedback

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Feedback
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(ctx context.Context, fb Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, fb)
	return nil
}

func (r *MemoryRepo) GetByInterview(ctx context.Context, interviewID string) (Feedback, error) {
	if err := ctx.Err(); err != nil {
		return Feedback{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, fb := range r.data {
		if fb.InterviewID == interviewID {
			return fb, nil
		}
	}
	return Feedback{}, ErrNotFound
}

func (r *MemoryRepo) ListByCandidate(ctx context.Context, candidateID string) ([]Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Feedback{}
	for _, fb := range r.data {
		if fb.CandidateID == candidateID {
			out = append(out, fb)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
