package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hanwat12/Ats-Slrd/internal/shared/metrics"
)

// Service contains business logic for query threads.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// CreateInput describes a new thread.
type CreateInput struct {
	FromUserID string `json:"fromUserId"`
	ToUserID   string `json:"toUserId"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Priority   string `json:"priority"`
	Category   string `json:"category"`
}

// Create opens a new thread between two participants.
func (s *Service) Create(ctx context.Context, in CreateInput) (Query, error) {
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	if in.FromUserID == "" || in.ToUserID == "" || in.Subject == "" || in.Message == "" {
		return Query{}, fmt.Errorf("%w: fromUserId, toUserId, subject, and message are required", ErrInvalidInput)
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if !ValidPriority(in.Priority) {
		return Query{}, fmt.Errorf("%w: unknown priority %s", ErrInvalidInput, in.Priority)
	}
	if in.Category == "" {
		in.Category = CategoryGeneral
	}
	if !ValidCategory(in.Category) {
		return Query{}, fmt.Errorf("%w: unknown category %s", ErrInvalidInput, in.Category)
	}

	q := Query{
		ID:         uuid.NewString(),
		FromUserID: in.FromUserID,
		ToUserID:   in.ToUserID,
		Subject:    in.Subject,
		Message:    in.Message,
		Priority:   in.Priority,
		Category:   in.Category,
		Status:     StatusOpen,
		CreatedAt:  time.Now().UTC(),
	}
	q.UpdatedAt = q.CreatedAt
	if err := s.Repo.Create(ctx, q); err != nil {
		return Query{}, err
	}
	metrics.IncQueryCreated()
	return q, nil
}

// ListForUser returns all threads a user participates in, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Query, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Respond appends a message to a thread. Resolved threads do not accept
// responses; only participants may respond.
func (s *Service) Respond(ctx context.Context, queryID, responderID, message string) (Response, error) {
	message = strings.TrimSpace(message)
	if queryID == "" || responderID == "" || message == "" {
		return Response{}, fmt.Errorf("%w: queryID, responderID, and message are required", ErrInvalidInput)
	}

	q, err := s.Repo.GetByID(ctx, queryID)
	if err != nil {
		return Response{}, err
	}
	if !q.IsParticipant(responderID) {
		return Response{}, ErrNotParticipant
	}
	if q.Status == StatusResolved {
		return Response{}, ErrResolved
	}

	resp := Response{
		ID:          uuid.NewString(),
		QueryID:     queryID,
		ResponderID: responderID,
		Message:     message,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.AddResponse(ctx, resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}

// UpdateStatus moves a thread to a new status. All transitions between the
// three known statuses are allowed, including re-opening a resolved thread.
func (s *Service) UpdateStatus(ctx context.Context, queryID, status string) error {
	if queryID == "" {
		return fmt.Errorf("%w: queryID is required", ErrInvalidInput)
	}
	if !ValidStatus(status) {
		return fmt.Errorf("%w: unknown query status %s", ErrInvalidInput, status)
	}

	q, err := s.Repo.GetByID(ctx, queryID)
	if err != nil {
		return err
	}
	if !CanTransition(q.Status, status) {
		return fmt.Errorf("%w: transition %s -> %s not allowed", ErrInvalidInput, q.Status, status)
	}
	if err := s.Repo.UpdateStatus(ctx, queryID, status); err != nil {
		return err
	}
	if status == StatusResolved && q.Status != StatusResolved {
		metrics.IncQueryResolved()
	}
	return nil
}

// View returns a thread and marks every unread response authored by the
// other participant as read. The marks run concurrently and are joined
// before returning; failed marks surface as an ErrMarkRead error alongside
// the thread itself, so callers can treat them as best-effort. The returned
// query reflects the read flags after marking.
func (s *Service) View(ctx context.Context, queryID, viewerID string) (Query, error) {
	if queryID == "" || viewerID == "" {
		return Query{}, fmt.Errorf("%w: queryID and viewerID are required", ErrInvalidInput)
	}

	q, err := s.Repo.GetByID(ctx, queryID)
	if err != nil {
		return Query{}, err
	}
	if !q.IsParticipant(viewerID) {
		return Query{}, ErrNotParticipant
	}

	// Plain group, not WithContext: each mark is independent and should not
	// be cancelled because a sibling failed.
	var g errgroup.Group
	for i := range q.Responses {
		resp := q.Responses[i]
		if resp.IsRead || resp.ResponderID == viewerID {
			continue
		}
		g.Go(func() error {
			if err := s.Repo.MarkResponseRead(ctx, resp.ID); err != nil {
				return fmt.Errorf("mark response %s read: %w", resp.ID, err)
			}
			return nil
		})
		q.Responses[i].IsRead = true
	}
	if err := g.Wait(); err != nil {
		return q, fmt.Errorf("%w: %v", ErrMarkRead, err)
	}
	return q, nil
}
