package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hanwat12/Ats-Slrd/internal/applications"
	"github.com/hanwat12/Ats-Slrd/internal/interviews"
	"github.com/hanwat12/Ats-Slrd/internal/shared/metrics"
	"github.com/hanwat12/Ats-Slrd/internal/shared/telemetry"
)

// InterviewDetail carries the related identifiers the submission workflow needs.
type InterviewDetail struct {
	InterviewID     string
	ApplicationID   string
	CandidateID     string
	JobID           string
	JobTitle        string
	InterviewerName string
}

// InterviewStore is the slice of the interviews service the workflow consumes.
type InterviewStore interface {
	GetDetail(ctx context.Context, interviewID string) (InterviewDetail, error)
	UpdateStatus(ctx context.Context, interviewID, status, notes string) error
}

// ApplicationStore updates application lifecycle status.
type ApplicationStore interface {
	UpdateStatus(ctx context.Context, applicationID, status, notes string) error
}

// Notifier emits a user-facing notification.
type Notifier interface {
	Notify(ctx context.Context, userID, title, message, notifType, relatedID string) error
}

// Service runs the feedback submission workflow. Submitting feedback writes
// four records in a fixed order: the feedback itself, the interview status,
// the application status, and a notification to the candidate. Each write
// completes before the next begins; a failure aborts the remainder with no
// compensation of earlier writes.
type Service struct {
	Repo          Repo
	Interviews    InterviewStore
	Applications  ApplicationStore
	Notifications Notifier
}

// SubmitInput is one interviewer's verdict on one interview.
type SubmitInput struct {
	InterviewID         string `json:"interviewId"`
	InterviewerID       string `json:"interviewerId"`
	OverallRating       int    `json:"overallRating"`
	TechnicalSkills     int    `json:"technicalSkills"`
	CommunicationSkills int    `json:"communicationSkills"`
	ProblemSolving      int    `json:"problemSolving"`
	CulturalFit         int    `json:"culturalFit"`
	Strengths           string `json:"strengths"`
	Weaknesses          string `json:"weaknesses"`
	Recommendation      string `json:"recommendation"`
	AdditionalComments  string `json:"additionalComments"`
	Rounds              string `json:"rounds"`
}

func (in SubmitInput) validate() error {
	if strings.TrimSpace(in.InterviewID) == "" {
		return errors.New("interviewId is required")
	}
	if in.OverallRating < 1 || in.OverallRating > 5 {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Recommendation) == "" {
		return ErrInvalidInput
	}
	for _, rating := range []int{in.TechnicalSkills, in.CommunicationSkills, in.ProblemSolving, in.CulturalFit} {
		if rating < 0 || rating > 5 {
			return ErrInvalidInput
		}
	}
	return nil
}

// Submit validates the input and runs the four-step workflow. Validation
// failures and duplicate submissions return before any write happens.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Feedback, error) {
	if err := in.validate(); err != nil {
		return Feedback{}, err
	}

	if _, err := s.Repo.GetByInterview(ctx, in.InterviewID); err == nil {
		return Feedback{}, ErrAlreadySubmitted
	} else if !errors.Is(err, ErrNotFound) {
		return Feedback{}, err
	}

	detail, err := s.Interviews.GetDetail(ctx, in.InterviewID)
	if err != nil {
		return Feedback{}, fmt.Errorf("load interview: %w", err)
	}

	start := time.Now()
	fb, err := s.run(ctx, in, detail)
	if err != nil {
		metrics.IncFeedbackFailed()
		telemetry.Error("feedback.workflow_failed", map[string]any{
			"interview_id":   in.InterviewID,
			"application_id": detail.ApplicationID,
			"error":          err.Error(),
		})
		return Feedback{}, err
	}
	metrics.IncFeedbackSubmitted()
	metrics.ObserveFeedbackDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return fb, nil
}

func (s *Service) run(ctx context.Context, in SubmitInput, detail InterviewDetail) (Feedback, error) {
	rounds := strings.TrimSpace(in.Rounds)
	if rounds == "" {
		rounds = "1"
	}

	fb := Feedback{
		ID:                  uuid.NewString(),
		InterviewID:         detail.InterviewID,
		CandidateID:         detail.CandidateID,
		JobID:               detail.JobID,
		InterviewerID:       in.InterviewerID,
		InterviewerName:     detail.InterviewerName,
		OverallRating:       in.OverallRating,
		TechnicalSkills:     in.TechnicalSkills,
		CommunicationSkills: in.CommunicationSkills,
		ProblemSolving:      in.ProblemSolving,
		CulturalFit:         in.CulturalFit,
		Strengths:           in.Strengths,
		Weaknesses:          in.Weaknesses,
		Recommendation:      in.Recommendation,
		AdditionalComments:  fmt.Sprintf("%s\n\nInterview Rounds: %s", in.AdditionalComments, rounds),
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, fb); err != nil {
		return Feedback{}, fmt.Errorf("create feedback: %w", err)
	}

	interviewNotes := fmt.Sprintf("Feedback submitted. Overall rating: %d/5. Recommendation: %s", in.OverallRating, in.Recommendation)
	if err := s.Interviews.UpdateStatus(ctx, detail.InterviewID, interviews.StatusCompleted, interviewNotes); err != nil {
		return Feedback{}, fmt.Errorf("update interview status: %w", err)
	}

	newStatus := applications.StatusForRecommendation(in.Recommendation)
	applicationNotes := fmt.Sprintf("Interview completed. %s recommendation.", strings.ToUpper(in.Recommendation))
	if err := s.Applications.UpdateStatus(ctx, detail.ApplicationID, newStatus, applicationNotes); err != nil {
		return Feedback{}, fmt.Errorf("update application status: %w", err)
	}

	message := fmt.Sprintf("Your interview for %s has been completed. We'll get back to you soon.", detail.JobTitle)
	if err := s.Notifications.Notify(ctx, detail.CandidateID, "Interview Completed", message, "application_status", detail.ApplicationID); err != nil {
		return Feedback{}, fmt.Errorf("create notification: %w", err)
	}

	return fb, nil
}

// GetByInterview returns the feedback recorded for an interview, if any.
func (s *Service) GetByInterview(ctx context.Context, interviewID string) (Feedback, error) {
	if interviewID == "" {
		return Feedback{}, errors.New("interviewID is required")
	}
	return s.Repo.GetByInterview(ctx, interviewID)
}

// ListByCandidate returns all feedback recorded for a candidate, newest first.
func (s *Service) ListByCandidate(ctx context.Context, candidateID string) ([]Feedback, error) {
	if candidateID == "" {
		return nil, errors.New("candidateID is required")
	}
	return s.Repo.ListByCandidate(ctx, candidateID)
}
