package queries

import "errors"

var (
	ErrNotFound       = errors.New("query not found")
	ErrResolved       = errors.New("query is resolved")
	ErrNotParticipant = errors.New("user is not a participant of this query")
	ErrInvalidInput   = errors.New("invalid input")
	ErrMarkRead       = errors.New("marking responses read failed")
)
