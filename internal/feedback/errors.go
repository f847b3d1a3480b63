package feedback

import "errors"

var (
	ErrNotFound         = errors.New("feedback not found")
	ErrInvalidInput     = errors.New("overall rating (1-5) and recommendation are required")
	ErrAlreadySubmitted = errors.New("feedback already submitted for this interview")
)
