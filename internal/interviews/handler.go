package interviews

import (
	"errors"
	"net/http"
	"strings"
	"time"

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

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/interviews", h.list)
	rg.GET("/interviews/:id", h.get)
	rg.POST("/interviews", h.schedule)
	rg.PATCH("/interviews/:id/status", h.updateStatus)
}

func (h *Handler) list(c *gin.Context) {
	details, err := h.Svc.ListWithDetails(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list interviews", nil)
		return
	}
	respond.JSON(c, http.StatusOK, details)
}

func (h *Handler) get(c *gin.Context) {
	detail, err := h.Svc.GetWithDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch interview", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, detail)
}

type scheduleRequest struct {
	ApplicationID   string    `json:"applicationId"`
	InterviewerName string    `json:"interviewerName"`
	ScheduledDate   time.Time `json:"scheduledDate"`
}

func (h *Handler) schedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.ApplicationID) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "applicationId is required", nil)
		return
	}
	if req.ScheduledDate.IsZero() {
		respond.Error(c, http.StatusBadRequest, "validation_error", "scheduledDate is required", nil)
		return
	}

	iv, err := h.Svc.Schedule(c.Request.Context(), strings.TrimSpace(req.ApplicationID), strings.TrimSpace(req.InterviewerName), req.ScheduledDate)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to schedule interview", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, iv)
}

type statusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), strings.TrimSpace(req.Status), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", "Failed to update status", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}
