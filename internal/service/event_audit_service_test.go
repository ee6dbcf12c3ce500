package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"agent-chat-be/internal/constant"
	"agent-chat-be/internal/pkg/logger"
	pkgEvents "agent-chat-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventAuditService_LogsEventPayload(t *testing.T) {
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "app.log"))
	svc := NewEventAuditService(nil, log)

	event := pkgEvents.New(constant.EventAgentCreated, map[string]interface{}{"agent_id": "writer"})
	require.NoError(t, svc.handleEvent(context.Background(), event))
	require.NoError(t, log.Sync())

	entries, err := log.GetLogs(logger.LogFilter{Module: "EVENTS"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, constant.EventAgentCreated, entries[0].Message)
	assert.Equal(t, "writer", entries[0].Details["agent_id"])
	assert.Equal(t, constant.EventAgentCreated, entries[0].Details["event_type"])
}

func TestEventAuditService_RunWithoutSubscriberWaits(t *testing.T) {
	svc := NewEventAuditService(nil, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	select {
	case <-done:
		t.Fatal("Run returned before cancellation")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}
