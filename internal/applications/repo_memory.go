package applications

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Application
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Application)}
}

func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if app.UpdatedAt.IsZero() {
		app.UpdatedAt = time.Now().UTC()
	}
	r.data[app.ID] = app
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, applicationID string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.data[applicationID]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

func (r *MemoryRepo) ListByCandidate(ctx context.Context, candidateID string) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Application{}
	for _, app := range r.data {
		if app.CandidateID == candidateID {
			out = append(out, app)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppliedAt.After(out[j].AppliedAt)
	})
	return out, nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, applicationID, status, notes string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.data[applicationID]
	if !ok {
		return ErrNotFound
	}
	app.Status = status
	app.Notes = notes
	app.UpdatedAt = time.Now().UTC()
	r.data[applicationID] = app
	return nil
}
