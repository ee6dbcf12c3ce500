package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"agent-chat-be/internal/dto"
	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/pkg/logger"
	"agent-chat-be/internal/repository/memory"
	"agent-chat-be/pkg/artifact"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testArtifactTopic = "artifact.created"

type consumerFixture struct {
	panels    IArtifactPanelService
	delivery  *recordingDelivery
	publisher IPublisherService
	cancel    context.CancelFunc
	done      chan error
}

// newConsumerFixture uses a persistent channel so messages published before
// the subscription is live are still delivered.
func newConsumerFixture(t *testing.T, opts StreamOptions) *consumerFixture {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	f := &consumerFixture{
		panels:    NewArtifactPanelService(newMemStore(), memory.NewPanelRepository()),
		delivery:  newRecordingDelivery(),
		publisher: NewPublisherService(testArtifactTopic, pubSub),
		done:      make(chan error, 1),
	}
	consumer := NewConsumerService(pubSub, testArtifactTopic, f.panels, f.delivery, logger.NewNopLogger(), opts)

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	go func() { f.done <- consumer.Consume(ctx) }()
	return f
}

func (f *consumerFixture) publish(t *testing.T, sessionKey string, a artifact.Artifact) {
	t.Helper()
	payload, err := json.Marshal(dto.ArtifactCreatedMessage{SessionKey: sessionKey, ChatId: uuid.New(), MessageId: uuid.New(), Artifact: a})
	require.NoError(t, err)
	require.NoError(t, f.publisher.Publish(context.Background(), payload))
}

func (f *consumerFixture) finished(sessionKey string) bool {
	f.delivery.mu.Lock()
	defer f.delivery.mu.Unlock()
	for _, v := range f.delivery.sent[sessionKey] {
		if evt, ok := v.(dto.PanelEvent); ok && evt.Type == PanelEventFinished {
			return true
		}
	}
	return false
}

func TestConsumerService_StreamsCreatedArtifact(t *testing.T) {
	f := newConsumerFixture(t, StreamOptions{ChunkRunes: 10, Interval: time.Millisecond})
	session := entity.Anonymous("k")

	a := artifact.Artifact{ID: "doc-1", Type: artifact.KindText, Title: "Plano", Content: strings.Repeat("abcde", 9)}
	f.publish(t, session.Key(), a)

	require.Eventually(t, func() bool { return f.finished(session.Key()) }, 2*time.Second, 10*time.Millisecond)

	events := f.delivery.streamEvents(session.Key())
	require.Len(t, events, 8)
	assert.Equal(t, artifact.EventDocumentID, events[0].Type)
	assert.Equal(t, artifact.EventDocumentTitle, events[1].Type)
	assert.Equal(t, "Plano", events[1].Title)
	assert.Equal(t, artifact.EventDocumentFinish, events[7].Type)

	var content strings.Builder
	for _, evt := range events[2:7] {
		assert.Equal(t, artifact.EventDocumentContentDelta, evt.Type)
		content.WriteString(evt.Content)
	}
	assert.Equal(t, a.Content, content.String())

	// panel-opened, 8 stream events, panel-finished
	assert.Equal(t, 10, f.delivery.count(session.Key()))

	panel := f.panels.Get(context.Background(), session)
	assert.True(t, panel.Visible)
	assert.Equal(t, artifact.StatusIdle, panel.Status)
	assert.Equal(t, "doc-1", panel.Artifact.ID)

	f.cancel()
	select {
	case err := <-f.done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
}

func TestConsumerService_SkipsMalformedPayload(t *testing.T) {
	f := newConsumerFixture(t, StreamOptions{})
	defer f.cancel()
	session := entity.Anonymous("k")

	require.NoError(t, f.publisher.Publish(context.Background(), []byte("{not json")))
	f.publish(t, session.Key(), artifact.Artifact{ID: "doc-2", Title: "Ok", Content: "short"})

	require.Eventually(t, func() bool { return f.finished(session.Key()) }, 2*time.Second, 10*time.Millisecond)
	assert.Len(t, f.delivery.streamEvents(session.Key()), 4)
}
