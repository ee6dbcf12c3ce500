package entity

import "errors"

var (
	ErrChatNotFound       = errors.New("chat not found")
	ErrAgentNotFound      = errors.New("agent not found")
	ErrAgentInactive      = errors.New("agent is not available")
	ErrMessageNotFound    = errors.New("message not found")
	ErrNoArtifact         = errors.New("message has no artifact")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("missing session")
	ErrInvalidIcon        = errors.New("unknown icon name")
)

// ChatLimitError is returned when a chat already holds the maximum number of
// messages.
type ChatLimitError struct {
	Limit int
	Used  int
}

func (e *ChatLimitError) Error() string {
	return "chat message limit reached"
}

// ErrChatLimitReached matches any *ChatLimitError through errors.Is.
var ErrChatLimitReached = &ChatLimitError{}

func (e *ChatLimitError) Is(target error) bool {
	_, ok := target.(*ChatLimitError)
	return ok
}
