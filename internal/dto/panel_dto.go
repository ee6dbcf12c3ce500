package dto

import (
	"agent-chat-be/pkg/artifact"

	"github.com/google/uuid"
)

type OpenPanelRequest struct {
	ChatId      uuid.UUID            `json:"chat_id" validate:"required"`
	MessageId   uuid.UUID            `json:"message_id" validate:"required"`
	BoundingBox artifact.BoundingBox `json:"bounding_box"`
}

type PanelResponse = artifact.Panel

// ArtifactCreatedMessage is published on the in-process bus after a turn
// produced an artifact.
type ArtifactCreatedMessage struct {
	SessionKey string            `json:"session_key"`
	ChatId     uuid.UUID         `json:"chat_id"`
	MessageId  uuid.UUID         `json:"message_id"`
	Artifact   artifact.Artifact `json:"artifact"`
}

// PanelEvent tells the UI to move the panel into a new state.
type PanelEvent struct {
	Type  string         `json:"type"`
	Panel artifact.Panel `json:"panel"`
}
