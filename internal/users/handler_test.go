package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "hr-1")
		c.Set("userRole", "hr")
		c.Next()
	})
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestListEndpointFiltersByRole(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.EnsureByEmail(context.Background(), "candidate@example.com", "Asha", "Verma"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?role=candidate", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "candidate@example.com") {
		t.Fatalf("expected seeded candidate in listing, got %s", resp.Body.String())
	}
}

func TestListEndpointRejectsUnknownRole(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?role=manager", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

type brokenListRepo struct {
	*MemoryRepo
}

func (r *brokenListRepo) ListByRole(ctx context.Context, role string) ([]User, error) {
	return nil, errors.New("connection refused")
}

func TestListEndpointFailsOnRepoError(t *testing.T) {
	svc := NewService(&brokenListRepo{MemoryRepo: NewMemoryRepo()})
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?role=hr", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on repo failure, got %d: %s", resp.Code, resp.Body.String())
	}
	if strings.Contains(resp.Body.String(), "connection refused") {
		t.Fatalf("expected internal error text to stay out of the response, got %s", resp.Body.String())
	}
}
