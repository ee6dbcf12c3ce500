package service

import (
	"context"
	"errors"
	"testing"

	"agent-chat-be/internal/constant"
	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/pkg/logger"
	"agent-chat-be/pkg/artifact"
	pkgEvents "agent-chat-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_NilPublisherIsNoop(t *testing.T) {
	events := NewEventPublisher(nil, logger.NewNopLogger())

	assert.NotPanics(t, func() {
		events.PublishAgentChanged(context.Background(), constant.EventAgentCreated, &entity.Agent{Id: "a"})
		events.PublishArtifactCreated(context.Background(), uuid.New(), uuid.New(), &artifact.Artifact{ID: "x"}, artifact.PathMarker)
	})
}

func TestEventPublisher_ArtifactCreated(t *testing.T) {
	sink := &recordingSink{}
	events := newEventPublisher(sink, logger.NewNopLogger())
	chatId, messageId := uuid.New(), uuid.New()

	events.PublishArtifactCreated(context.Background(), chatId, messageId, nil, artifact.PathMarker)
	assert.Empty(t, sink.types(), "no artifact, no event")

	events.PublishArtifactCreated(context.Background(), chatId, messageId,
		&artifact.Artifact{ID: "doc-1", Title: "Plano", Content: "ação"}, artifact.PathTool)

	require.Len(t, sink.events, 1)
	evt := sink.events[0].(pkgEvents.BaseEvent)
	assert.Equal(t, constant.EventArtifactCreated, evt.Type)
	assert.Equal(t, "doc-1", evt.Data["entity_id"])
	assert.Equal(t, chatId.String(), evt.Data["chat_id"])
	assert.Equal(t, 4, evt.Data["content_length"])
	assert.Equal(t, string(artifact.PathTool), evt.Data["path"])
	assert.Contains(t, evt.Data, "occurred_at")
}

func TestEventPublisher_SinkErrorsAreSwallowed(t *testing.T) {
	sink := &recordingSink{err: errors.New("nats: timeout")}
	events := newEventPublisher(sink, logger.NewNopLogger())

	events.PublishAgentChanged(context.Background(), constant.EventAgentDeleted, &entity.Agent{Id: "a", Active: true})
	assert.Equal(t, []string{constant.EventAgentDeleted}, sink.types())
}
