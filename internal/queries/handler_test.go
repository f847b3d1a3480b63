package queries

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testRouter(svc *Service, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("userRole", "hr")
		c.Next()
	})
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestCreateEndpointDefaultsSender(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	router := testRouter(svc, "hr-1")

	body := `{"toUserId":"admin-1","subject":"Scheduling clash","message":"Two interviews overlap on Friday."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/queries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"fromUserId":"hr-1"`) {
		t.Fatalf("expected sender defaulted from identity, got %s", resp.Body.String())
	}
}

func TestViewEndpointForbiddenForOutsider(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	q := newThread(t, svc)
	router := testRouter(svc, "outsider")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/queries/"+q.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestRespondEndpointConflictWhenResolved(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	q := newThread(t, svc)
	if err := svc.UpdateStatus(context.Background(), q.ID, StatusResolved); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	router := testRouter(svc, "admin-1")

	body := `{"message":"too late"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/queries/"+q.ID+"/responses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
}

type flakyMarkRepo struct {
	*MemoryRepo
}

func (r *flakyMarkRepo) MarkResponseRead(ctx context.Context, responseID string) error {
	return errors.New("write timeout")
}

func TestViewEndpointServesThreadWhenMarkingFails(t *testing.T) {
	repo := &flakyMarkRepo{MemoryRepo: NewMemoryRepo()}
	svc := NewService(repo)
	q := newThread(t, svc)
	if _, err := svc.Respond(context.Background(), q.ID, "admin-1", "unread reply"); err != nil {
		t.Fatalf("Respond: %v", err)
	}
	router := testRouter(svc, "hr-1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/queries/"+q.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 despite mark failure, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "unread reply") {
		t.Fatalf("expected thread body in response, got %s", resp.Body.String())
	}
}

func TestStatusEndpointRejectsUnknownStatus(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	q := newThread(t, svc)
	router := testRouter(svc, "hr-1")

	body := `{"status":"archived"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/queries/"+q.ID+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

type downRepo struct {
	*MemoryRepo
}

func (r *downRepo) GetByID(ctx context.Context, queryID string) (Query, error) {
	return Query{}, errors.New("connection refused")
}

func TestViewEndpointFailsWhenThreadFetchFails(t *testing.T) {
	repo := &downRepo{MemoryRepo: NewMemoryRepo()}
	svc := NewService(repo)
	router := testRouter(svc, "hr-1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/queries/q1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the thread cannot be loaded, got %d: %s", resp.Code, resp.Body.String())
	}
	if strings.Contains(resp.Body.String(), `"fromUserId"`) {
		t.Fatalf("expected no thread payload on fetch failure, got %s", resp.Body.String())
	}
}

type brokenCreateRepo struct {
	*MemoryRepo
}

func (r *brokenCreateRepo) Create(ctx context.Context, q Query) error {
	return errors.New("connection refused")
}

func TestCreateEndpointFailsOnRepoError(t *testing.T) {
	repo := &brokenCreateRepo{MemoryRepo: NewMemoryRepo()}
	svc := NewService(repo)
	router := testRouter(svc, "hr-1")

	body := `{"toUserId":"admin-1","subject":"Scheduling clash","message":"Two interviews overlap on Friday."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/queries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on repo failure, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCreateEndpointRejectsMissingFields(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	router := testRouter(svc, "hr-1")

	body := `{"toUserId":"admin-1","message":"no subject"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/queries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing subject, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestViewSurfacesMarkFailureAsBestEffort(t *testing.T) {
	repo := &flakyMarkRepo{MemoryRepo: NewMemoryRepo()}
	svc := NewService(repo)
	q := newThread(t, svc)
	if _, err := svc.Respond(context.Background(), q.ID, "admin-1", "unread reply"); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	got, err := svc.View(context.Background(), q.ID, "hr-1")
	if !errors.Is(err, ErrMarkRead) {
		t.Fatalf("expected ErrMarkRead, got %v", err)
	}
	if got.ID != q.ID {
		t.Fatalf("expected thread alongside the mark failure, got %q", got.ID)
	}
}
