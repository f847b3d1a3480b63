package queries

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu        sync.RWMutex
	queries   map[string]Query
	responses map[string][]Response // queryID -> responses, oldest first
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		queries:   make(map[string]Query),
		responses: make(map[string][]Response),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, q Query) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	q.Responses = nil
	if q.UpdatedAt.IsZero() {
		q.UpdatedAt = q.CreatedAt
	}
	r.queries[q.ID] = q
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, queryID string) (Query, error) {
	if err := ctx.Err(); err != nil {
		return Query{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.queries[queryID]
	if !ok {
		return Query{}, ErrNotFound
	}
	q.Responses = append([]Response(nil), r.responses[queryID]...)
	return q, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Query, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Query{}
	for id, q := range r.queries {
		if q.FromUserID == userID || q.ToUserID == userID {
			q.Responses = append([]Response(nil), r.responses[id]...)
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, queryID, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.queries[queryID]
	if !ok {
		return ErrNotFound
	}
	q.Status = status
	q.UpdatedAt = time.Now().UTC()
	r.queries[queryID] = q
	return nil
}

func (r *MemoryRepo) AddResponse(ctx context.Context, resp Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.queries[resp.QueryID]; !ok {
		return ErrNotFound
	}
	r.responses[resp.QueryID] = append(r.responses[resp.QueryID], resp)
	return nil
}

func (r *MemoryRepo) MarkResponseRead(ctx context.Context, responseID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for queryID, responses := range r.responses {
		for i := range responses {
			if responses[i].ID == responseID {
				responses[i].IsRead = true
				r.responses[queryID] = responses
				return nil
			}
		}
	}
	return ErrNotFound
}
