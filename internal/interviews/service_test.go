package interviews

import (
	"context"
	"testing"
	"time"

	"github.com/hanwat12/Ats-Slrd/internal/applications"
	"github.com/hanwat12/Ats-Slrd/internal/jobs"
	"github.com/hanwat12/Ats-Slrd/internal/users"
)

func seededService(t *testing.T) (*Service, applications.Application) {
	t.Helper()
	ctx := context.Background()

	userRepo := users.NewMemoryRepo()
	jobRepo := jobs.NewMemoryRepo()
	appRepo := applications.NewMemoryRepo()

	candidate := users.User{ID: "c1", Email: "cand@example.com", FirstName: "Asha", LastName: "Verma", Role: users.RoleCandidate, CreatedAt: time.Now().UTC()}
	if err := userRepo.Upsert(ctx, candidate); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	job := jobs.Job{ID: "j1", Title: "Backend Engineer", Status: jobs.StatusOpen, CreatedAt: time.Now().UTC()}
	if err := jobRepo.Create(ctx, job); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	app := applications.Application{ID: "a1", CandidateID: "c1", JobID: "j1", Status: applications.StatusShortlisted, AppliedAt: time.Now().UTC()}
	if err := appRepo.Create(ctx, app); err != nil {
		t.Fatalf("seed application: %v", err)
	}

	svc := &Service{
		Repo:         NewMemoryRepo(),
		Users:        userRepo,
		Jobs:         jobRepo,
		Applications: appRepo,
	}
	return svc, app
}

func TestScheduleCopiesApplicationRelations(t *testing.T) {
	svc, app := seededService(t)

	iv, err := svc.Schedule(context.Background(), app.ID, "Priya Sharma", time.Now().UTC().Add(48*time.Hour))
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if iv.CandidateID != app.CandidateID || iv.JobID != app.JobID {
		t.Fatalf("expected relations copied from application, got %+v", iv)
	}
	if iv.Status != StatusScheduled {
		t.Fatalf("expected scheduled status, got %s", iv.Status)
	}
}

func TestGetWithDetailsDecorates(t *testing.T) {
	svc, app := seededService(t)

	iv, err := svc.Schedule(context.Background(), app.ID, "Priya Sharma", time.Now().UTC())
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	detail, err := svc.GetWithDetails(context.Background(), iv.ID)
	if err != nil {
		t.Fatalf("GetWithDetails: %v", err)
	}
	if detail.Candidate.Email != "cand@example.com" {
		t.Fatalf("expected candidate decoration, got %+v", detail.Candidate)
	}
	if detail.Job.Title != "Backend Engineer" {
		t.Fatalf("expected job decoration, got %+v", detail.Job)
	}
	if detail.Application.ID != app.ID {
		t.Fatalf("expected application decoration, got %+v", detail.Application)
	}
}

func TestGetWithDetailsToleratesMissingRelations(t *testing.T) {
	svc, _ := seededService(t)

	iv := Interview{
		ID:            "orphan",
		ApplicationID: "gone-app",
		CandidateID:   "gone-user",
		JobID:         "gone-job",
		ScheduledDate: time.Now().UTC(),
		Status:        StatusScheduled,
		CreatedAt:     time.Now().UTC(),
	}
	if err := svc.Repo.Create(context.Background(), iv); err != nil {
		t.Fatalf("seed interview: %v", err)
	}

	detail, err := svc.GetWithDetails(context.Background(), "orphan")
	if err != nil {
		t.Fatalf("expected missing relations to be tolerated, got %v", err)
	}
	if detail.Candidate.ID != "" || detail.Job.ID != "" || detail.Application.ID != "" {
		t.Fatalf("expected zero-value relations, got %+v", detail)
	}
}

func TestUpdateStatusAcceptsAnyPriorStatus(t *testing.T) {
	svc, app := seededService(t)

	iv, err := svc.Schedule(context.Background(), app.ID, "Priya Sharma", time.Now().UTC())
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	for _, status := range []string{StatusCompleted, StatusCancelled, StatusScheduled, StatusCompleted} {
		if err := svc.UpdateStatus(context.Background(), iv.ID, status, "note"); err != nil {
			t.Fatalf("UpdateStatus to %s: %v", status, err)
		}
	}

	if err := svc.UpdateStatus(context.Background(), iv.ID, "paused", ""); err == nil {
		t.Fatal("expected unknown status to be rejected")
	}
}
