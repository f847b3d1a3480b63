package queries

import "time"

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

const (
	CategoryCandidateSelection    = "candidate_selection"
	CategoryInterviewScheduling   = "interview_scheduling"
	CategoryFeedbackClarification = "feedback_clarification"
	CategoryGeneral               = "general"
)

// Query is a staff message thread between two fixed participants.
type Query struct {
	ID         string     `json:"id"`
	FromUserID string     `json:"fromUserId"`
	ToUserID   string     `json:"toUserId"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Priority   string     `json:"priority"`
	Category   string     `json:"category"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Responses  []Response `json:"responses"`
}

// Response is one message inside a query thread. The read flag flips
// false to true exactly once, when the other participant views the thread.
type Response struct {
	ID          string    `json:"id"`
	QueryID     string    `json:"queryId"`
	ResponderID string    `json:"responderId"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsParticipant reports whether userID is one of the two thread participants.
func (q Query) IsParticipant(userID string) bool {
	return userID != "" && (q.FromUserID == userID || q.ToUserID == userID)
}

// ValidStatus reports whether status is a known thread status.
func ValidStatus(status string) bool {
	switch status {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	default:
		return false
	}
}

// ValidPriority reports whether priority is a known priority level.
func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// ValidCategory reports whether category is a known thread category.
func ValidCategory(category string) bool {
	switch category {
	case CategoryCandidateSelection, CategoryInterviewScheduling, CategoryFeedbackClarification, CategoryGeneral:
		return true
	default:
		return false
	}
}

// allowedTransitions is the thread status transition table. Every pair of
// known statuses is permitted, including re-opening a resolved thread;
// the table exists so that tightening any edge later is a one-line change.
var allowedTransitions = map[string]map[string]bool{
	StatusOpen:       {StatusOpen: true, StatusInProgress: true, StatusResolved: true},
	StatusInProgress: {StatusOpen: true, StatusInProgress: true, StatusResolved: true},
	StatusResolved:   {StatusOpen: true, StatusInProgress: true, StatusResolved: true},
}

// CanTransition reports whether a thread may move from one status to another.
func CanTransition(from, to string) bool {
	return allowedTransitions[from][to]
}
