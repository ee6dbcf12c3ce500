package mapper

import (
	"encoding/json"

	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Chat Mappers

func (m *ChatMapper) ChatToEntity(c *model.Chat) *entity.Chat {
	if c == nil {
		return nil
	}
	return &entity.Chat{
		Id:           c.Id,
		AgentId:      c.AgentId,
		Title:        c.Title,
		UserId:       c.UserId,
		SessionToken: c.UserSession,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *ChatMapper) ChatToModel(c *entity.Chat) *model.Chat {
	if c == nil {
		return nil
	}
	return &model.Chat{
		Id:          c.Id,
		AgentId:     c.AgentId,
		Title:       c.Title,
		UserId:      c.UserId,
		UserSession: c.SessionToken,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// Message Mappers

// MessageToEntity tolerates a malformed artifacts column by dropping the
// artifact rather than failing the whole history read.
func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	var art *entity.Artifact
	if len(msg.Artifacts) > 0 && string(msg.Artifacts) != "null" {
		var decoded entity.Artifact
		if err := json.Unmarshal(msg.Artifacts, &decoded); err == nil && decoded.ID != "" {
			art = &decoded
		}
	}

	return &entity.Message{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		Role:      entity.MessageRole(msg.Role),
		Content:   msg.Content,
		Artifact:  art,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) (*model.Message, error) {
	if msg == nil {
		return nil, nil
	}

	var artifacts datatypes.JSON
	if msg.Artifact != nil {
		raw, err := json.Marshal(msg.Artifact)
		if err != nil {
			return nil, err
		}
		artifacts = datatypes.JSON(raw)
	}

	return &model.Message{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		Role:      string(msg.Role),
		Content:   msg.Content,
		Artifacts: artifacts,
		CreatedAt: msg.CreatedAt,
	}, nil
}

func (m *ChatMapper) MessagesToEntities(models []*model.Message) []*entity.Message {
	out := make([]*entity.Message, len(models))
	for i, msg := range models {
		out[i] = m.MessageToEntity(msg)
	}
	return out
}
