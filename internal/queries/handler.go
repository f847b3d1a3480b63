package queries

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hanwat12/Ats-Slrd/internal/shared/server/middleware"
	"github.com/hanwat12/Ats-Slrd/internal/shared/server/respond"
	"github.com/hanwat12/Ats-Slrd/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches query-thread routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/queries", h.create)
	rg.GET("/queries", h.list)
	rg.GET("/queries/:id", h.view)
	rg.POST("/queries/:id/responses", h.respond)
	rg.PATCH("/queries/:id/status", h.updateStatus)
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if in.FromUserID == "" {
		in.FromUserID = middleware.UserIDFromContext(c)
	}

	q, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Failed to send query", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create query", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, q)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list queries", nil)
		return
	}

	respond.JSON(c, http.StatusOK, list)
}

func (h *Handler) view(c *gin.Context) {
	viewerID := middleware.UserIDFromContext(c)

	q, err := h.Svc.View(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "query not found", nil)
			return
		case errors.Is(err, ErrNotParticipant):
			respond.Error(c, http.StatusForbidden, "forbidden", "not a participant of this query", nil)
			return
		case errors.Is(err, ErrMarkRead):
			// Read-receipt marking is best-effort: log and serve the thread.
			telemetry.Error("queries.mark_read_failed", map[string]any{
				"query_id":  c.Param("id"),
				"viewer_id": viewerID,
				"error":     err.Error(),
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch query", nil)
			return
		}
	}

	respond.JSON(c, http.StatusOK, q)
}

type respondRequest struct {
	Message string `json:"message"`
}

func (h *Handler) respond(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	responderID := middleware.UserIDFromContext(c)
	resp, err := h.Svc.Respond(c.Request.Context(), c.Param("id"), responderID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "query not found", nil)
		case errors.Is(err, ErrResolved):
			respond.Error(c, http.StatusConflict, "conflict", "query is resolved", nil)
		case errors.Is(err, ErrNotParticipant):
			respond.Error(c, http.StatusForbidden, "forbidden", "not a participant of this query", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Failed to send response", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record response", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, resp)
}

type queryStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req queryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), strings.TrimSpace(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "query not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Failed to update status", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update status", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}
