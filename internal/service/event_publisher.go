package service

import (
	"context"

	"agent-chat-be/internal/constant"
	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/pkg/logger"
	"agent-chat-be/pkg/artifact"
	pkgEvents "agent-chat-be/pkg/events"
	pktNats "agent-chat-be/pkg/nats"

	"github.com/google/uuid"
)

// IEventPublisher emits domain events for other services. Publishing is best
// effort: failures are logged and never reach the caller.
type IEventPublisher interface {
	PublishChatTurnCompleted(ctx context.Context, chat *entity.Chat, reply *entity.Message, decision artifact.Decision)
	PublishArtifactCreated(ctx context.Context, chatId, messageId uuid.UUID, a *artifact.Artifact, path artifact.SplitPath)
	PublishAgentChanged(ctx context.Context, eventType string, agent *entity.Agent)
}

// EventSink is what *nats.Publisher provides.
type EventSink interface {
	Publish(ctx context.Context, event pkgEvents.Event) error
}

type eventPublisher struct {
	sink   EventSink
	logger logger.ILogger
}

// NewEventPublisher wraps a NATS publisher. A nil publisher (NATS down at
// boot) turns every call into a no-op.
func NewEventPublisher(publisher *pktNats.Publisher, log logger.ILogger) IEventPublisher {
	var sink EventSink
	if publisher != nil {
		sink = publisher
	}
	return newEventPublisher(sink, log)
}

func newEventPublisher(sink EventSink, log logger.ILogger) *eventPublisher {
	return &eventPublisher{sink: sink, logger: log}
}

func (p *eventPublisher) publish(ctx context.Context, evt pkgEvents.BaseEvent) {
	if p.sink == nil {
		return
	}
	if err := p.sink.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+evt.Type+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *eventPublisher) PublishChatTurnCompleted(ctx context.Context, chat *entity.Chat, reply *entity.Message, decision artifact.Decision) {
	data := map[string]interface{}{
		"chat_id":         chat.Id.String(),
		"agent_id":        chat.AgentId,
		"message_id":      reply.Id.String(),
		"intent_detected": decision.IntentDetected,
		"path":            string(decision.Path),
		"has_artifact":    decision.Outcome.Artifact != nil,
		"entity_type":     "chat",
		"entity_id":       chat.Id.String(),
	}
	p.publish(ctx, pkgEvents.New(constant.EventChatTurnCompleted, data))
}

func (p *eventPublisher) PublishArtifactCreated(ctx context.Context, chatId, messageId uuid.UUID, a *artifact.Artifact, path artifact.SplitPath) {
	if a == nil {
		return
	}
	data := map[string]interface{}{
		"artifact_id":    a.ID,
		"chat_id":        chatId.String(),
		"message_id":     messageId.String(),
		"title":          a.Title,
		"content_length": len([]rune(a.Content)),
		"path":           string(path),
		"entity_type":    "artifact",
		"entity_id":      a.ID,
	}
	p.publish(ctx, pkgEvents.New(constant.EventArtifactCreated, data))
}

func (p *eventPublisher) PublishAgentChanged(ctx context.Context, eventType string, agent *entity.Agent) {
	data := map[string]interface{}{
		"agent_id":    agent.Id,
		"name":        agent.Name,
		"status":      string(agent.Status()),
		"entity_type": "agent",
		"entity_id":   agent.Id,
	}
	p.publish(ctx, pkgEvents.New(eventType, data))
}
