package entity

import (
	"time"

	"agent-chat-be/pkg/artifact"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Artifact is the wire shape stored in messages.artifacts.
type Artifact = artifact.Artifact

type Message struct {
	Id        uuid.UUID
	ChatId    uuid.UUID
	Role      MessageRole
	Content   string
	Artifact  *Artifact
	CreatedAt time.Time
}
