package dto

import (
	"time"

	"agent-chat-be/pkg/artifact"

	"github.com/google/uuid"
)

type CreateChatRequest struct {
	AgentId string `json:"agent_id" validate:"required"`
}

type CreateChatResponse struct {
	Id       uuid.UUID            `json:"id"`
	AgentId  string               `json:"agent_id"`
	Title    string               `json:"title"`
	Greeting *ChatMessageResponse `json:"greeting,omitempty"`
}

type GetAllChatsResponse struct {
	Id          uuid.UUID `json:"id"`
	AgentId     string    `json:"agent_id"`
	Title       string    `json:"title"`
	LastMessage *string   `json:"last_message"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID          `json:"id"`
	Role      string             `json:"role"`
	Content   string             `json:"content"`
	Artifact  *artifact.Artifact `json:"artifact"`
	CreatedAt time.Time          `json:"created_at"`
}

type SendMessageRequest struct {
	ChatId  uuid.UUID `json:"-"`
	Content string    `json:"content" validate:"required,max=20000"`
}

// SendMessageResponse embeds the {content, artifact} outcome of the turn.
type SendMessageResponse struct {
	ChatId uuid.UUID            `json:"chat_id"`
	Title  string               `json:"title"`
	Sent   *ChatMessageResponse `json:"sent"`
	Reply  *ChatMessageResponse `json:"reply"`
	artifact.Outcome
}

type RenameChatRequest struct {
	Id    uuid.UUID `json:"-"`
	Title string    `json:"title" validate:"required,max=200"`
}

type UpdateArtifactRequest struct {
	ChatId    uuid.UUID `json:"-"`
	MessageId uuid.UUID `json:"-"`
	Content   string    `json:"content" validate:"required"`
}

// --- Limit Exceeded Error Types ---

// LimitExceededData is the data payload for 429 responses
type LimitExceededData struct {
	Limit int `json:"limit"`
	Used  int `json:"used"`
}

// LimitExceededResponse is the full 429 response structure
type LimitExceededResponse struct {
	Success   bool              `json:"success"`
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	ErrorType string            `json:"error_type"`
	Data      LimitExceededData `json:"data"`
}
