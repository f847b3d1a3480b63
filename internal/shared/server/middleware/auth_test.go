package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hanwat12/Ats-Slrd/internal/shared/auth"
)

func authRouter(env string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(env))
	router.GET("/api/v1/interviews", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": UserIDFromContext(c),
			"role":   RoleFromContext(c),
		})
	})
	router.OPTIONS("/api/v1/interviews", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	router := authRouter("dev")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/interviews", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthRejectsMissingIdentity(t *testing.T) {
	router := authRouter("dev")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interviews", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthDevHeaderFallback(t *testing.T) {
	router := authRouter("dev")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interviews", nil)
	req.Header.Set("X-User-Id", "hr-1")
	req.Header.Set("X-User-Role", "hr")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := resp.Body.String()
	if body != `{"role":"hr","userId":"hr-1"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestAuthHeaderFallbackDisabledOutsideDev(t *testing.T) {
	router := authRouter("staging")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interviews", nil)
	req.Header.Set("X-User-Id", "hr-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 outside dev, got %d", resp.Code)
	}
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	router := authRouter("dev")

	token, err := auth.SignJWT(auth.Claims{Sub: "u1", Email: "u1@example.com", Role: "admin"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interviews", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp.Body.String() != `{"role":"admin","userId":"u1"}` {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestAuthRejectsMalformedBearer(t *testing.T) {
	router := authRouter("dev")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interviews", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
