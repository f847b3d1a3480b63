package notifications

import (
	"context"
	"errors"
	"testing"
)

func TestCreateDefaultsTypeToGeneral(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	n, err := svc.Create(context.Background(), "u1", "Welcome", "Thanks for signing up.", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if n.Type != TypeGeneral {
		t.Fatalf("expected type %q, got %q", TypeGeneral, n.Type)
	}
	if n.ID == "" {
		t.Fatalf("expected generated notification ID")
	}
	if n.IsRead {
		t.Fatalf("new notifications should start unread")
	}
}

func TestCreateRequiresUserAndTitle(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Create(context.Background(), "", "Welcome", "", TypeGeneral, ""); err == nil {
		t.Fatalf("expected error for missing user")
	}
	if _, err := svc.Create(context.Background(), "u1", "", "", TypeGeneral, ""); err == nil {
		t.Fatalf("expected error for missing title")
	}
}

func TestListForUserNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	first, err := svc.Create(ctx, "u1", "Interview Completed", "Round one done.", TypeApplicationStatus, "app-1")
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	second, err := svc.Create(ctx, "u1", "Interview Completed", "Round two done.", TypeApplicationStatus, "app-1")
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if _, err := svc.Create(ctx, "u2", "Welcome", "", TypeGeneral, ""); err != nil {
		t.Fatalf("Create other user: %v", err)
	}

	list, err := svc.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(list))
	}
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Fatalf("expected newest first ordering")
	}
	seen := map[string]bool{list[0].ID: true, list[1].ID: true}
	if !seen[first.ID] || !seen[second.ID] {
		t.Fatalf("expected both notifications for u1, got %s and %s", list[0].ID, list[1].ID)
	}
}

func TestMarkRead(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	n, err := svc.Create(ctx, "u1", "Welcome", "", TypeGeneral, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.MarkRead(ctx, n.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	list, err := svc.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if !list[0].IsRead {
		t.Fatalf("expected notification to be read")
	}

	if err := svc.MarkRead(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing notification, got %v", err)
	}
}
