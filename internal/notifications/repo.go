package notifications

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "notification not found" }

type Repo interface {
	Create(ctx context.Context, n Notification) error
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}
