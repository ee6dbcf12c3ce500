package mapper

import (
	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/model"
)

type AgentMapper struct{}

func NewAgentMapper() *AgentMapper {
	return &AgentMapper{}
}

func (m *AgentMapper) ToEntity(a *model.Agent) *entity.Agent {
	if a == nil {
		return nil
	}
	suggestions := make([]string, len(a.Suggestions))
	copy(suggestions, a.Suggestions)

	return &entity.Agent{
		Id:           a.Id,
		Name:         a.Name,
		Description:  a.Description,
		Speciality:   a.Speciality,
		SystemPrompt: a.SystemPrompt,
		Greeting:     a.Greeting,
		Suggestions:  suggestions,
		Color:        a.Color,
		IconName:     a.IconName,
		Active:       a.Active,
		PremiumTier:  a.PremiumTier,
		Category:     a.Category,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AgentMapper) ToModel(a *entity.Agent) *model.Agent {
	if a == nil {
		return nil
	}
	return &model.Agent{
		Id:           a.Id,
		Name:         a.Name,
		Description:  a.Description,
		Speciality:   a.Speciality,
		SystemPrompt: a.SystemPrompt,
		Greeting:     a.Greeting,
		Suggestions:  a.Suggestions,
		Color:        a.Color,
		IconName:     a.IconName,
		Active:       a.Active,
		PremiumTier:  a.PremiumTier,
		Category:     a.Category,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AgentMapper) ToEntities(models []*model.Agent) []*entity.Agent {
	out := make([]*entity.Agent, len(models))
	for i, a := range models {
		out[i] = m.ToEntity(a)
	}
	return out
}
