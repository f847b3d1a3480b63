package applications

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/applications", h.list)
	rg.GET("/applications/:id", h.get)
	rg.PATCH("/applications/:id/status", h.updateStatus)
}

func (h *Handler) list(c *gin.Context) {
	candidateID := strings.TrimSpace(c.Query("candidateId"))
	if candidateID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "candidateId is required", nil)
		return
	}

	apps, err := h.Svc.ListByCandidate(c.Request.Context(), candidateID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}

	respond.JSON(c, http.StatusOK, apps)
}

func (h *Handler) get(c *gin.Context) {
	app, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch application", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, app)
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), strings.TrimSpace(req.Status), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", "Failed to update status", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}
