package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"agent-chat-be/internal/dto"
	"agent-chat-be/internal/pkg/logger"
	"agent-chat-be/pkg/artifact"

	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	PanelEventOpened   = "panel-opened"
	PanelEventFinished = "panel-finished"
)

// StreamDelivery pushes JSON events to the connections of one session.
// Implemented by the websocket hub.
type StreamDelivery interface {
	Send(ctx context.Context, sessionKey string, v any) error
}

type IConsumerService interface {
	// Consume blocks until ctx is cancelled and all running streams end.
	Consume(ctx context.Context) error
}

type StreamOptions struct {
	ChunkRunes int
	Interval   time.Duration
}

// consumerService replays every freshly created artifact to the owner's
// browser as a typing stream and drives the panel slot through
// streaming -> idle.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	panels     IArtifactPanelService
	delivery   StreamDelivery
	logger     logger.ILogger
	opts       StreamOptions
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	panels IArtifactPanelService,
	delivery StreamDelivery,
	logger logger.ILogger,
	opts StreamOptions,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		panels:     panels,
		delivery:   delivery,
		logger:     logger,
		opts:       opts,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	// Streams of different sessions run side by side.
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			var payload dto.ArtifactCreatedMessage
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				cs.logger.Error("STREAM", "Failed to unmarshal artifact message", map[string]interface{}{"error": err.Error()})
				msg.Ack() // Ack invalid messages to prevent infinite retry
				continue
			}
			msg.Ack()

			wg.Add(1)
			go func() {
				defer wg.Done()
				cs.stream(ctx, payload)
			}()
		}
	}
}

func (cs *consumerService) stream(ctx context.Context, payload dto.ArtifactCreatedMessage) {
	key := payload.SessionKey
	a := payload.Artifact

	panel := cs.panels.StartStream(key, a)
	cs.send(ctx, key, dto.PanelEvent{Type: PanelEventOpened, Panel: panel})

	for i, evt := range artifact.StreamEvents(a, cs.opts.ChunkRunes) {
		if i > 0 && evt.Type == artifact.EventDocumentContentDelta && cs.opts.Interval > 0 {
			select {
			case <-ctx.Done():
				cs.panels.FinishStream(key, a.ID)
				return
			case <-time.After(cs.opts.Interval):
			}
		}
		cs.send(ctx, key, evt)
	}

	panel = cs.panels.FinishStream(key, a.ID)
	cs.send(ctx, key, dto.PanelEvent{Type: PanelEventFinished, Panel: panel})

	cs.logger.Info("STREAM", "Artifact streamed", map[string]interface{}{
		"session":     key,
		"artifact_id": a.ID,
		"chat_id":     payload.ChatId.String(),
	})
}

func (cs *consumerService) send(ctx context.Context, key string, v any) {
	if err := cs.delivery.Send(ctx, key, v); err != nil {
		cs.logger.Warn("STREAM", "Failed to deliver stream event", map[string]interface{}{"session": key, "error": err.Error()})
	}
}
