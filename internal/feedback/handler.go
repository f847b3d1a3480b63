package feedback

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanwat12/Ats-Slrd/internal/interviews"
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

// RegisterRoutes attaches feedback routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", h.submit)
	rg.GET("/feedback/interview/:interviewId", h.byInterview)
	rg.GET("/feedback/candidate/:candidateId", h.byCandidate)
}

func (h *Handler) submit(c *gin.Context) {
	var in SubmitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if in.InterviewerID == "" {
		in.InterviewerID = middleware.UserIDFromContext(c)
	}

	fb, err := h.Svc.Submit(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Please provide overall rating and recommendation", nil)
		case errors.Is(err, ErrAlreadySubmitted):
			respond.Error(c, http.StatusConflict, "conflict", "Feedback already submitted for this interview", nil)
		case errors.Is(err, interviews.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to submit feedback", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, fb)
}

func (h *Handler) byCandidate(c *gin.Context) {
	list, err := h.Svc.ListByCandidate(c.Request.Context(), c.Param("candidateId"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch feedback", nil)
		return
	}

	respond.JSON(c, http.StatusOK, list)
}

func (h *Handler) byInterview(c *gin.Context) {
	fb, err := h.Svc.GetByInterview(c.Request.Context(), c.Param("interviewId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "feedback not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch feedback", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, fb)
}
