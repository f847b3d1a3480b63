package notifications

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for notifications.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create records a new unread notification for a user.
func (s *Service) Create(ctx context.Context, userID, title, message, notifType, relatedID string) (Notification, error) {
	if userID == "" || title == "" {
		return Notification{}, errors.New("userID and title are required")
	}
	if notifType == "" {
		notifType = TypeGeneral
	}

	n := Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		RelatedID: relatedID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return Notification{}, err
	}
	return n, nil
}

// ListForUser returns a user's notifications, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	return s.Repo.ListByUser(ctx, userID)
}

// MarkRead flips a notification to read. Already-read notifications are a no-op.
func (s *Service) MarkRead(ctx context.Context, notificationID string) error {
	if notificationID == "" {
		return errors.New("notificationID is required")
	}
	return s.Repo.MarkRead(ctx, notificationID)
}
