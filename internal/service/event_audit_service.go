package service

import (
	"context"

	"agent-chat-be/internal/pkg/logger"
	pkgEvents "agent-chat-be/pkg/events"
	pktNats "agent-chat-be/pkg/nats"
)

// EventAuditService copies every domain event into the application log so
// the admin log viewer shows them next to request logs.
type EventAuditService struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewEventAuditService(sub *pktNats.Subscriber, log logger.ILogger) *EventAuditService {
	return &EventAuditService{subscriber: sub, logger: log}
}

// Run blocks until ctx is cancelled. Without a subscriber it just waits.
func (s *EventAuditService) Run(ctx context.Context) error {
	if s.subscriber == nil {
		<-ctx.Done()
		return nil
	}

	stop, err := s.subscriber.Subscribe(ctx, pktNats.SubjectPrefix+">", "event-audit", s.handleEvent)
	if err != nil {
		s.logger.Error("EVENTS", "Failed to start event audit subscriber", map[string]interface{}{"error": err.Error()})
		return nil
	}
	s.logger.Info("EVENTS", "Event audit listening", map[string]interface{}{"subject": pktNats.SubjectPrefix + ">"})

	<-ctx.Done()
	stop()
	return nil
}

func (s *EventAuditService) handleEvent(ctx context.Context, event pkgEvents.Event) error {
	details := make(map[string]interface{}, len(event.Payload())+1)
	for k, v := range event.Payload() {
		details[k] = v
	}
	details["event_type"] = event.EventType()

	s.logger.Info("EVENTS", event.EventType(), details)
	return nil
}
