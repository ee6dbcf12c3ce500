package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"agent-chat-be/internal/constant"
	"agent-chat-be/internal/dto"
	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/pkg/logger"
	"agent-chat-be/internal/repository/specification"
	"agent-chat-be/internal/repository/unitofwork"
	"agent-chat-be/pkg/artifact"
	"agent-chat-be/pkg/llm"

	"github.com/google/uuid"
)

var (
	errUnknownTool   = errors.New("model called an unknown tool")
	errEmptyDocument = errors.New("model returned an empty document")
)

type IChatService interface {
	Create(ctx context.Context, session entity.SessionContext, req *dto.CreateChatRequest) (*dto.CreateChatResponse, error)
	GetAll(ctx context.Context, session entity.SessionContext) ([]*dto.GetAllChatsResponse, error)
	GetMessages(ctx context.Context, session entity.SessionContext, chatId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	SendMessage(ctx context.Context, session entity.SessionContext, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	Rename(ctx context.Context, session entity.SessionContext, req *dto.RenameChatRequest) (*dto.GetAllChatsResponse, error)
	Delete(ctx context.Context, session entity.SessionContext, chatId uuid.UUID) error
	UpdateArtifact(ctx context.Context, session entity.SessionContext, req *dto.UpdateArtifactRequest) (*dto.ChatMessageResponse, error)
}

type ChatOptions struct {
	MessageLimit  int
	HistoryWindow int
}

type chatService struct {
	uowFactory   unitofwork.RepositoryFactory
	agentService IAgentService
	llmProvider  llm.LLMProvider
	orchestrator *artifact.Orchestrator
	publisher    IPublisherService
	events       IEventPublisher
	logger       logger.ILogger
	opts         ChatOptions
	now          func() time.Time
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	agentService IAgentService,
	llmProvider llm.LLMProvider,
	orchestrator *artifact.Orchestrator,
	publisher IPublisherService,
	events IEventPublisher,
	logger logger.ILogger,
	opts ChatOptions,
) IChatService {
	return &chatService{
		uowFactory:   uowFactory,
		agentService: agentService,
		llmProvider:  llmProvider,
		orchestrator: orchestrator,
		publisher:    publisher,
		events:       events,
		logger:       logger,
		opts:         opts,
		now:          time.Now,
	}
}

func toMessageResponse(m *entity.Message) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:        m.Id,
		Role:      string(m.Role),
		Content:   m.Content,
		Artifact:  m.Artifact,
		CreatedAt: m.CreatedAt,
	}
}

func toChatResponse(c *entity.Chat, last *entity.Message) *dto.GetAllChatsResponse {
	res := &dto.GetAllChatsResponse{
		Id:        c.Id,
		AgentId:   c.AgentId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if last != nil {
		preview := last.Content
		res.LastMessage = &preview
	}
	return res
}

// chatTitleFrom turns the first user message into a one-line title.
func chatTitleFrom(content string) string {
	title := strings.Join(strings.Fields(content), " ")
	runes := []rune(title)
	if len(runes) <= constant.ChatTitleMaxRunes {
		return title
	}
	return string(runes[:constant.ChatTitleMaxRunes]) + constant.ChatTitleEllipsis
}

func truncateForLog(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// ownedChat loads a chat only when the session owns it. A chat of another
// owner is reported as missing.
func (s *chatService) ownedChat(ctx context.Context, uow unitofwork.UnitOfWork, session entity.SessionContext, chatId uuid.UUID) (*entity.Chat, error) {
	if !session.Valid() {
		return nil, entity.ErrUnauthenticated
	}
	chat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByID{ID: chatId},
		specification.OwnedBy{Session: session},
	)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, entity.ErrChatNotFound
	}
	return chat, nil
}

func (s *chatService) activeAgent(ctx context.Context, id string) (*entity.Agent, error) {
	agent, err := s.agentService.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent.Status() != entity.AgentStatusActive {
		return nil, entity.ErrAgentInactive
	}
	return agent, nil
}

func (s *chatService) Create(ctx context.Context, session entity.SessionContext, req *dto.CreateChatRequest) (*dto.CreateChatResponse, error) {
	if !session.Valid() {
		return nil, entity.ErrUnauthenticated
	}
	agent, err := s.activeAgent(ctx, req.AgentId)
	if err != nil {
		return nil, err
	}

	now := s.now()
	chat := entity.Chat{
		Id:        uuid.New(),
		AgentId:   agent.Id,
		Title:     constant.DefaultChatTitle(agent.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	session.Stamp(&chat)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatRepository().Create(ctx, &chat); err != nil {
		return nil, err
	}

	res := &dto.CreateChatResponse{
		Id:      chat.Id,
		AgentId: chat.AgentId,
		Title:   chat.Title,
	}

	if greeting := strings.TrimSpace(agent.Greeting); greeting != "" {
		msg := entity.Message{
			Id:        uuid.New(),
			ChatId:    chat.Id,
			Role:      entity.MessageRoleAssistant,
			Content:   greeting,
			CreatedAt: now,
		}
		if err := uow.MessageRepository().Create(ctx, &msg); err != nil {
			return nil, err
		}
		res.Greeting = toMessageResponse(&msg)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *chatService) GetAll(ctx context.Context, session entity.SessionContext) ([]*dto.GetAllChatsResponse, error) {
	if !session.Valid() {
		return nil, entity.ErrUnauthenticated
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chats, err := uow.ChatRepository().FindAll(ctx,
		specification.OwnedBy{Session: session},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if len(chats) == 0 {
		return []*dto.GetAllChatsResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(chats))
	for _, c := range chats {
		ids = append(ids, c.Id)
	}
	last, err := uow.MessageRepository().LastByChatIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GetAllChatsResponse, 0, len(chats))
	for _, c := range chats {
		result = append(result, toChatResponse(c, last[c.Id]))
	}
	return result, nil
}

func (s *chatService) GetMessages(ctx context.Context, session entity.SessionContext, chatId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedChat(ctx, uow, session, chatId); err != nil {
		return nil, err
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: chatId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, toMessageResponse(m))
	}
	return result, nil
}

// history returns the newest HistoryWindow messages in chronological order.
// Artifact bodies are left out; the model sees only what was said in chat.
func (s *chatService) history(ctx context.Context, uow unitofwork.UnitOfWork, chatId uuid.UUID) ([]llm.Message, error) {
	if s.opts.HistoryWindow <= 0 {
		return nil, nil
	}
	recent, err := uow.MessageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: chatId},
		specification.Latest{N: s.opts.HistoryWindow},
	)
	if err != nil {
		return nil, err
	}

	out := make([]llm.Message, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		m := recent[i]
		role := llm.RoleUser
		if m.Role == entity.MessageRoleAssistant {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: m.Content})
	}
	return out, nil
}

func (s *chatService) systemPrompt(agent *entity.Agent, userMessage string, toolsAllowed bool) string {
	base := strings.TrimSpace(agent.SystemPrompt)
	if base == "" {
		base = constant.DefaultAgentPrompt(agent.Name, agent.Speciality)
	}

	switch {
	case toolsAllowed:
		return base + "\n\n" + constant.ToolsSystemPrompt
	case s.orchestrator.RequestsDocument(userMessage):
		return base + "\n\n" + constant.DocumentGuidancePrompt
	default:
		return base
	}
}

func (s *chatService) SendMessage(ctx context.Context, session entity.SessionContext, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := s.ownedChat(ctx, uow, session, req.ChatId)
	if err != nil {
		return nil, err
	}
	agent, err := s.activeAgent(ctx, chat.AgentId)
	if err != nil {
		return nil, err
	}

	used, err := uow.MessageRepository().Count(ctx, specification.ByChatID{ChatID: chat.Id})
	if err != nil {
		return nil, err
	}
	if s.opts.MessageLimit > 0 && int(used) >= s.opts.MessageLimit {
		return nil, &entity.ChatLimitError{Limit: s.opts.MessageLimit, Used: int(used)}
	}

	priorUserMessages, err := uow.MessageRepository().Count(ctx,
		specification.ByChatID{ChatID: chat.Id},
		specification.ByRole{Role: entity.MessageRoleUser},
	)
	if err != nil {
		return nil, err
	}

	history, err := s.history(ctx, uow, chat.Id)
	if err != nil {
		return nil, err
	}

	// The user message is stored before the model call so it survives a
	// provider failure.
	userMsg := entity.Message{
		Id:        uuid.New(),
		ChatId:    chat.Id,
		Role:      entity.MessageRoleUser,
		Content:   req.Content,
		CreatedAt: s.now(),
	}
	if err := uow.MessageRepository().Create(ctx, &userMsg); err != nil {
		return nil, err
	}
	if priorUserMessages == 0 {
		chat.Title = chatTitleFrom(req.Content)
		if err := uow.ChatRepository().Update(ctx, chat); err != nil {
			return nil, err
		}
	}

	profile := agent.Profile()
	toolsAllowed := s.orchestrator.AllowsTools(profile)

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: s.systemPrompt(agent, req.Content, toolsAllowed)})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: req.Content})

	decision, err := s.complete(ctx, messages, req.Content, profile, toolsAllowed)
	if err != nil {
		s.logger.Error("CHAT", "Completion failed, sending fallback reply", map[string]interface{}{
			"chat_id":  chat.Id.String(),
			"agent_id": agent.Id,
			"error":    err.Error(),
		})
		if err := uow.ChatRepository().Touch(ctx, chat.Id); err != nil {
			return nil, err
		}
		fallback := &entity.Message{
			Id:        uuid.New(),
			ChatId:    chat.Id,
			Role:      entity.MessageRoleAssistant,
			Content:   constant.FallbackReply,
			CreatedAt: s.now(),
		}
		return &dto.SendMessageResponse{
			ChatId:  chat.Id,
			Title:   chat.Title,
			Sent:    toMessageResponse(&userMsg),
			Reply:   toMessageResponse(fallback),
			Outcome: artifact.Outcome{Content: fallback.Content},
		}, nil
	}

	s.logDecision(req.Content, decision)

	reply := entity.Message{
		Id:        uuid.New(),
		ChatId:    chat.Id,
		Role:      entity.MessageRoleAssistant,
		Content:   decision.Outcome.Content,
		Artifact:  decision.Outcome.Artifact,
		CreatedAt: s.now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().Create(ctx, &reply); err != nil {
		return nil, err
	}
	if err := uow.ChatRepository().Touch(ctx, chat.Id); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.announce(ctx, session, chat, &reply, decision)

	return &dto.SendMessageResponse{
		ChatId:  chat.Id,
		Title:   chat.Title,
		Sent:    toMessageResponse(&userMsg),
		Reply:   toMessageResponse(&reply),
		Outcome: decision.Outcome,
	}, nil
}

// complete asks the model for a reply and turns it into a decision. Any
// error means the turn falls back to the canned reply.
func (s *chatService) complete(ctx context.Context, messages []llm.Message, userMessage string, profile *artifact.AgentProfile, toolsAllowed bool) (artifact.Decision, error) {
	var opts []llm.Option
	if toolsAllowed {
		opts = append(opts, llm.WithTools(llm.DocumentTool()))
	}

	result, err := s.llmProvider.Complete(ctx, messages, opts...)
	if err != nil {
		return artifact.Decision{}, err
	}

	switch r := result.(type) {
	case llm.ToolCallResponse:
		return s.completeDocument(ctx, messages, r)
	case llm.TextResponse:
		if strings.TrimSpace(r.Content) == "" {
			return artifact.Decision{}, llm.ErrEmptyCompletion
		}
		return s.orchestrator.FromText(r.Content, userMessage, profile), nil
	default:
		return artifact.Decision{}, fmt.Errorf("unexpected completion %T", result)
	}
}

// completeDocument answers the createDocument call and requests the body in
// a second completion without tools.
func (s *chatService) completeDocument(ctx context.Context, messages []llm.Message, call llm.ToolCallResponse) (artifact.Decision, error) {
	if call.Call.Name != llm.CreateDocumentTool {
		s.logger.Warn("CHAT", "Model called an unknown tool", map[string]interface{}{"tool": call.Call.Name})
		return artifact.Decision{}, errUnknownTool
	}

	args, err := llm.ParseCreateDocumentArgs(call.Call.Arguments)
	if err != nil {
		return artifact.Decision{}, err
	}

	followUp := make([]llm.Message, 0, len(messages)+2)
	followUp = append(followUp, messages...)
	followUp = append(followUp,
		llm.Message{Role: llm.RoleAssistant, Content: call.Content, ToolCalls: []llm.ToolCall{call.Call}},
		llm.Message{
			Role:       llm.RoleTool,
			ToolCallID: call.Call.ID,
			Name:       call.Call.Name,
			Content:    fmt.Sprintf(constant.ToolResultCreated, args.Title),
		},
	)

	body, err := s.llmProvider.Chat(ctx, followUp)
	if err != nil {
		return artifact.Decision{}, err
	}

	decision := s.orchestrator.FromTool(args.Title, body)
	if decision.Outcome.Artifact == nil {
		return artifact.Decision{}, errEmptyDocument
	}
	return decision, nil
}

func (s *chatService) logDecision(userMessage string, decision artifact.Decision) {
	artifactLength := 0
	if decision.Outcome.Artifact != nil {
		artifactLength = len([]rune(decision.Outcome.Artifact.Content))
	}
	s.logger.Info("ARTIFACT", "Artifact decision", map[string]interface{}{
		"user_message":    truncateForLog(userMessage, 100),
		"intent_detected": decision.IntentDetected,
		"has_artifact":    decision.Outcome.Artifact != nil,
		"content_length":  len([]rune(decision.Outcome.Content)),
		"artifact_length": artifactLength,
		"path":            string(decision.Path),
	})
}

// announce fans the finished turn out. Failures are logged; the turn is
// already committed.
func (s *chatService) announce(ctx context.Context, session entity.SessionContext, chat *entity.Chat, reply *entity.Message, decision artifact.Decision) {
	s.events.PublishChatTurnCompleted(ctx, chat, reply, decision)

	if reply.Artifact == nil {
		return
	}
	s.events.PublishArtifactCreated(ctx, chat.Id, reply.Id, reply.Artifact, decision.Path)

	payload, err := json.Marshal(dto.ArtifactCreatedMessage{
		SessionKey: session.Key(),
		ChatId:     chat.Id,
		MessageId:  reply.Id,
		Artifact:   *reply.Artifact,
	})
	if err != nil {
		s.logger.Error("CHAT", "Failed to encode artifact message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("CHAT", "Failed to publish artifact message", map[string]interface{}{"error": err.Error()})
	}
}

func (s *chatService) Rename(ctx context.Context, session entity.SessionContext, req *dto.RenameChatRequest) (*dto.GetAllChatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := s.ownedChat(ctx, uow, session, req.Id)
	if err != nil {
		return nil, err
	}

	chat.Title = strings.TrimSpace(req.Title)
	chat.UpdatedAt = s.now()
	if err := uow.ChatRepository().Update(ctx, chat); err != nil {
		return nil, err
	}
	return toChatResponse(chat, nil), nil
}

func (s *chatService) Delete(ctx context.Context, session entity.SessionContext, chatId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := s.ownedChat(ctx, uow, session, chatId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().DeleteByChatId(ctx, chat.Id); err != nil {
		return err
	}
	if err := uow.ChatRepository().Delete(ctx, chat.Id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *chatService) UpdateArtifact(ctx context.Context, session entity.SessionContext, req *dto.UpdateArtifactRequest) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedChat(ctx, uow, session, req.ChatId); err != nil {
		return nil, err
	}

	msg, err := uow.MessageRepository().FindOne(ctx,
		specification.ByID{ID: req.MessageId},
		specification.ByChatID{ChatID: req.ChatId},
	)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, entity.ErrMessageNotFound
	}
	if msg.Artifact == nil {
		return nil, entity.ErrNoArtifact
	}

	msg.Artifact.Content = req.Content
	if err := uow.MessageRepository().Update(ctx, msg); err != nil {
		return nil, err
	}
	return toMessageResponse(msg), nil
}
