package notifications

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

// RegisterRoutes attaches notification routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.list)
	rg.POST("/notifications/:id/read", h.markRead)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list notifications", nil)
		return
	}

	respond.JSON(c, http.StatusOK, list)
}

func (h *Handler) markRead(c *gin.Context) {
	err := h.Svc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "notification not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to mark notification read", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}
