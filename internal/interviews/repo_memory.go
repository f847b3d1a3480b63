package interviews

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Interview
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Interview)}
}

func (r *MemoryRepo) Create(ctx context.Context, iv Interview) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[iv.ID] = iv
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, interviewID string) (Interview, error) {
	if err := ctx.Err(); err != nil {
		return Interview{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	iv, ok := r.data[interviewID]
	if !ok {
		return Interview{}, ErrNotFound
	}
	return iv, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Interview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Interview, 0, len(r.data))
	for _, iv := range r.data {
		out = append(out, iv)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledDate.After(out[j].ScheduledDate)
	})
	return out, nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, interviewID, status, notes string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	iv, ok := r.data[interviewID]
	if !ok {
		return ErrNotFound
	}
	iv.Status = status
	iv.Notes = notes
	r.data[interviewID] = iv
	return nil
}
