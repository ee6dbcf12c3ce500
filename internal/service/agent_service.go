package service

import (
	"context"
	"strings"
	"time"

	"agent-chat-be/internal/constant"
	"agent-chat-be/internal/dto"
	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/repository/memory"
	"agent-chat-be/internal/repository/specification"
	"agent-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAgentService interface {
	List(ctx context.Context, req *dto.AgentListRequest) ([]*dto.AgentResponse, error)
	Show(ctx context.Context, id string) (*dto.AgentResponse, error)
	// Resolve loads an agent through the cache, whatever its status.
	Resolve(ctx context.Context, id string) (*entity.Agent, error)

	AdminList(ctx context.Context, req *dto.AgentListRequest) ([]*dto.AdminAgentResponse, error)
	Create(ctx context.Context, req *dto.CreateAgentRequest) (*dto.AdminAgentResponse, error)
	Update(ctx context.Context, req *dto.UpdateAgentRequest) (*dto.AdminAgentResponse, error)
	Delete(ctx context.Context, id string) error
}

type agentService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.AgentCache
	events     IEventPublisher
}

func NewAgentService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.AgentCache,
	events IEventPublisher,
) IAgentService {
	return &agentService{
		uowFactory: uowFactory,
		cache:      cache,
		events:     events,
	}
}

func toAgentResponse(a *entity.Agent) *dto.AgentResponse {
	suggestions := a.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return &dto.AgentResponse{
		Id:          a.Id,
		Name:        a.Name,
		Description: a.Description,
		Speciality:  a.Speciality,
		Greeting:    a.Greeting,
		Suggestions: suggestions,
		Color:       a.Color,
		IconName:    a.IconName,
		Status:      string(a.Status()),
		PremiumTier: a.PremiumTier,
		Category:    a.Category,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toAdminAgentResponse(a *entity.Agent) *dto.AdminAgentResponse {
	return &dto.AdminAgentResponse{
		AgentResponse: *toAgentResponse(a),
		SystemPrompt:  a.SystemPrompt,
		Active:        a.Active,
	}
}

func (s *agentService) List(ctx context.Context, req *dto.AgentListRequest) ([]*dto.AgentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agents, err := uow.AgentRepository().FindAll(ctx,
		specification.ListedAgents{IncludeComingSoon: req.IncludeComingSoon},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AgentResponse, 0, len(agents))
	for _, a := range agents {
		result = append(result, toAgentResponse(a))
	}
	return result, nil
}

// Show hides inactive agents; coming-soon ones are visible so the UI can
// render their card.
func (s *agentService) Show(ctx context.Context, id string) (*dto.AgentResponse, error) {
	agent, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent.Status() == entity.AgentStatusInactive {
		return nil, entity.ErrAgentNotFound
	}
	return toAgentResponse(agent), nil
}

func (s *agentService) Resolve(ctx context.Context, id string) (*entity.Agent, error) {
	if agent, ok := s.cache.Get(id); ok {
		return agent, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	agent, err := uow.AgentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, entity.ErrAgentNotFound
	}

	s.cache.Set(agent)
	return agent, nil
}

func (s *agentService) AdminList(ctx context.Context, req *dto.AgentListRequest) ([]*dto.AdminAgentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at"}}
	if !req.IncludeInactive {
		specs = append(specs, specification.ListedAgents{IncludeComingSoon: req.IncludeComingSoon})
	}

	agents, err := uow.AgentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminAgentResponse, 0, len(agents))
	for _, a := range agents {
		result = append(result, toAdminAgentResponse(a))
	}
	return result, nil
}

func (s *agentService) Create(ctx context.Context, req *dto.CreateAgentRequest) (*dto.AdminAgentResponse, error) {
	if req.IconName != "" && !constant.IsKnownIcon(req.IconName) {
		return nil, entity.ErrInvalidIcon
	}

	now := time.Now()
	agent := entity.Agent{
		Id:           strings.TrimSpace(req.Id),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Speciality:   req.Speciality,
		SystemPrompt: req.SystemPrompt,
		Greeting:     req.Greeting,
		Suggestions:  req.Suggestions,
		Color:        req.Color,
		IconName:     req.IconName,
		Active:       req.Active == nil || *req.Active,
		PremiumTier:  req.PremiumTier,
		Category:     req.Category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if agent.Id == "" {
		agent.Id = uuid.NewString()
	}
	if len(agent.Suggestions) == 0 {
		agent.Suggestions = append([]string(nil), constant.DefaultAgentSuggestions...)
	}
	if agent.Color == "" {
		agent.Color = constant.DefaultAgentColor
	}
	if agent.IconName == "" {
		agent.IconName = constant.DefaultAgentIcon
	}
	if agent.Category == "" {
		agent.Category = constant.DefaultAgentCategory
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AgentRepository().Create(ctx, &agent); err != nil {
		return nil, err
	}

	s.cache.Invalidate(agent.Id)
	s.events.PublishAgentChanged(ctx, constant.EventAgentCreated, &agent)

	return toAdminAgentResponse(&agent), nil
}

func (s *agentService) Update(ctx context.Context, req *dto.UpdateAgentRequest) (*dto.AdminAgentResponse, error) {
	if req.IconName != nil && !constant.IsKnownIcon(*req.IconName) {
		return nil, entity.ErrInvalidIcon
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	agent, err := uow.AgentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, entity.ErrAgentNotFound
	}

	if req.Name != nil {
		agent.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		agent.Description = *req.Description
	}
	if req.Speciality != nil {
		agent.Speciality = *req.Speciality
	}
	if req.SystemPrompt != nil {
		agent.SystemPrompt = *req.SystemPrompt
	}
	if req.Greeting != nil {
		agent.Greeting = *req.Greeting
	}
	if req.Suggestions != nil {
		agent.Suggestions = *req.Suggestions
	}
	if req.Color != nil {
		agent.Color = *req.Color
	}
	if req.IconName != nil {
		agent.IconName = *req.IconName
	}
	if req.Active != nil {
		agent.Active = *req.Active
	}
	if req.PremiumTier != nil {
		agent.PremiumTier = *req.PremiumTier
	}
	if req.Category != nil {
		agent.Category = *req.Category
	}
	agent.UpdatedAt = time.Now()

	if err := uow.AgentRepository().Update(ctx, agent); err != nil {
		return nil, err
	}

	s.cache.Invalidate(agent.Id)
	s.events.PublishAgentChanged(ctx, constant.EventAgentUpdated, agent)

	return toAdminAgentResponse(agent), nil
}

func (s *agentService) Delete(ctx context.Context, id string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agent, err := uow.AgentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if agent == nil {
		return entity.ErrAgentNotFound
	}

	if err := uow.AgentRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(id)
	s.events.PublishAgentChanged(ctx, constant.EventAgentDeleted, agent)
	return nil
}
