package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hanwat12/Ats-Slrd/internal/applications"
	"github.com/hanwat12/Ats-Slrd/internal/interviews"
	"github.com/hanwat12/Ats-Slrd/internal/jobs"
	"github.com/hanwat12/Ats-Slrd/internal/shared/config"
	"github.com/hanwat12/Ats-Slrd/internal/users"
)

func buildTestApp(t *testing.T) *App {
	t.Helper()
	app, err := Build(config.Config{
		Env:           "dev",
		LocalStoreDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return app
}

func seedInterview(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()

	if err := app.UsersRepo.Upsert(ctx, users.User{
		ID:        "c1",
		Email:     "candidate@example.com",
		FirstName: "Asha",
		LastName:  "Verma",
		Role:      users.RoleCandidate,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := app.JobsRepo.Create(ctx, jobs.Job{
		ID:        "j1",
		Title:     "Backend Engineer",
		Status:    "open",
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	if err := app.ApplicationsRepo.Create(ctx, applications.Application{
		ID:          "a1",
		CandidateID: "c1",
		JobID:       "j1",
		Status:      applications.StatusShortlisted,
		AppliedAt:   time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed application: %v", err)
	}
	if err := app.InterviewsRepo.Create(ctx, interviews.Interview{
		ID:              "i1",
		ApplicationID:   "a1",
		CandidateID:     "c1",
		JobID:           "j1",
		InterviewerName: "Priya Sharma",
		ScheduledDate:   time.Now().UTC(),
		Status:          interviews.StatusScheduled,
		CreatedAt:       time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed interview: %v", err)
	}
}

func TestFeedbackSubmissionEndToEnd(t *testing.T) {
	app := buildTestApp(t)
	seedInterview(t, app)
	ctx := context.Background()

	body := `{
		"interviewId": "i1",
		"overallRating": 5,
		"technicalSkills": 4,
		"communicationSkills": 5,
		"problemSolving": 4,
		"culturalFit": 5,
		"strengths": "Strong system design",
		"recommendation": "hire",
		"additionalComments": "Great depth",
		"rounds": "2"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "hr-1")
	req.Header.Set("X-User-Role", "hr")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Interview Rounds: 2") {
		t.Fatalf("expected rounds suffix in comments, got %s", resp.Body.String())
	}

	iv, err := app.InterviewsRepo.GetByID(ctx, "i1")
	if err != nil {
		t.Fatalf("load interview: %v", err)
	}
	if iv.Status != interviews.StatusCompleted {
		t.Fatalf("expected interview completed, got %s", iv.Status)
	}

	a, err := app.ApplicationsRepo.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("load application: %v", err)
	}
	if a.Status != applications.StatusSelected {
		t.Fatalf("expected application selected, got %s", a.Status)
	}

	notifs, err := app.NotificationsService.ListForUser(ctx, "c1")
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifs) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifs))
	}
	if notifs[0].Title != "Interview Completed" {
		t.Fatalf("unexpected notification title %q", notifs[0].Title)
	}
	if !strings.Contains(notifs[0].Message, "Backend Engineer") {
		t.Fatalf("expected job title in message, got %q", notifs[0].Message)
	}
	if notifs[0].RelatedID != "a1" {
		t.Fatalf("expected notification related to application, got %q", notifs[0].RelatedID)
	}
}

func TestFeedbackResubmissionConflictsEndToEnd(t *testing.T) {
	app := buildTestApp(t)
	seedInterview(t, app)

	submit := func() *httptest.ResponseRecorder {
		body := `{"interviewId":"i1","overallRating":3,"recommendation":"maybe"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "hr-1")
		req.Header.Set("X-User-Role", "hr")
		resp := httptest.NewRecorder()
		app.Router.ServeHTTP(resp, req)
		return resp
	}

	if resp := submit(); resp.Code != http.StatusCreated {
		t.Fatalf("first submit: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp := submit(); resp.Code != http.StatusConflict {
		t.Fatalf("second submit: expected 409, got %d: %s", resp.Code, resp.Body.String())
	}

	a, err := app.ApplicationsRepo.GetByID(context.Background(), "a1")
	if err != nil {
		t.Fatalf("load application: %v", err)
	}
	if a.Status != applications.StatusOnHold {
		t.Fatalf("expected application on-hold from first submit, got %s", a.Status)
	}
}
