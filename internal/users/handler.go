package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanwat12/Ats-Slrd/internal/shared/server/middleware"
	"github.com/hanwat12/Ats-Slrd/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches user routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.listByRole)
	rg.GET("/users/me", h.me)
}

func (h *Handler) listByRole(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "role is required", nil)
		return
	}

	list, err := h.Svc.ListByRole(c.Request.Context(), role)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown role", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list users", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, list)
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	user, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch user", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, user)
}
