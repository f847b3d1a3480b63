package jobs

import "time"

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
	StatusDraft  = "draft"
)

type Job struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Department string    `json:"department"`
	Location   string    `json:"location"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
