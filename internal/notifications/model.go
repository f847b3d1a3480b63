package notifications

import "time"

const (
	TypeApplicationStatus = "application_status"
	TypeInterview         = "interview"
	TypeGeneral           = "general"
)

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	RelatedID string    `json:"relatedId,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
