package service

import (
	"context"
	"testing"
	"time"

	"agent-chat-be/internal/constant"
	"agent-chat-be/internal/dto"
	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/pkg/logger"
	"agent-chat-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgentFixture(t *testing.T) (*memStore, *memory.AgentCache, *recordingSink, IAgentService) {
	t.Helper()
	store := newMemStore()
	cache := memory.NewAgentCache()
	sink := &recordingSink{}
	svc := NewAgentService(store, cache, newEventPublisher(sink, logger.NewNopLogger()))

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, a := range []*entity.Agent{
		{Id: "writer", Name: "Writer", Active: true, Category: "content"},
		{Id: "retired", Name: "Retired", Active: false, Category: "general"},
		{Id: "video", Name: "Video", Active: false, Category: "coming_soon_video"},
	} {
		a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		store.agents[a.Id] = a
	}
	return store, cache, sink, svc
}

func TestAgentService_List(t *testing.T) {
	_, _, _, svc := newAgentFixture(t)

	tests := []struct {
		name string
		req  dto.AgentListRequest
		want []string
	}{
		{"active only", dto.AgentListRequest{}, []string{"writer"}},
		{"with coming soon", dto.AgentListRequest{IncludeComingSoon: true}, []string{"writer", "video"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(context.Background(), &tt.req)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.Id)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	all, err := svc.AdminList(context.Background(), &dto.AgentListRequest{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, string(entity.AgentStatusComingSoon), all[2].Status)
}

func TestAgentService_Show(t *testing.T) {
	_, _, _, svc := newAgentFixture(t)

	got, err := svc.Show(context.Background(), "video")
	require.NoError(t, err)
	assert.Equal(t, "coming_soon", got.Status)

	_, err = svc.Show(context.Background(), "retired")
	assert.ErrorIs(t, err, entity.ErrAgentNotFound)

	_, err = svc.Show(context.Background(), "nobody")
	assert.ErrorIs(t, err, entity.ErrAgentNotFound)
}

func TestAgentService_CreateAppliesDefaults(t *testing.T) {
	store, _, sink, svc := newAgentFixture(t)

	got, err := svc.Create(context.Background(), &dto.CreateAgentRequest{
		Name:         "  Roteirista ",
		SystemPrompt: "Você escreve roteiros.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.Id)
	assert.Equal(t, "Roteirista", got.Name)
	assert.Equal(t, constant.DefaultAgentSuggestions, got.Suggestions)
	assert.Equal(t, constant.DefaultAgentColor, got.Color)
	assert.Equal(t, constant.DefaultAgentIcon, got.IconName)
	assert.Equal(t, constant.DefaultAgentCategory, got.Category)
	assert.True(t, got.Active)
	assert.Equal(t, "active", got.Status)

	assert.Contains(t, store.agents, got.Id)
	assert.Equal(t, []string{constant.EventAgentCreated}, sink.types())
}

func TestAgentService_RejectsUnknownIcon(t *testing.T) {
	_, _, _, svc := newAgentFixture(t)

	_, err := svc.Create(context.Background(), &dto.CreateAgentRequest{Name: "X", SystemPrompt: "y", IconName: "rocket-ship"})
	assert.ErrorIs(t, err, entity.ErrInvalidIcon)

	bad := "rocket-ship"
	_, err = svc.Update(context.Background(), &dto.UpdateAgentRequest{Id: "writer", IconName: &bad})
	assert.ErrorIs(t, err, entity.ErrInvalidIcon)
}

func TestAgentService_UpdateInvalidatesCache(t *testing.T) {
	_, cache, sink, svc := newAgentFixture(t)

	resolved, err := svc.Resolve(context.Background(), "writer")
	require.NoError(t, err)
	assert.Equal(t, "Writer", resolved.Name)
	_, cached := cache.Get("writer")
	require.True(t, cached)

	name := "Senior Writer"
	inactive := false
	got, err := svc.Update(context.Background(), &dto.UpdateAgentRequest{Id: "writer", Name: &name, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Senior Writer", got.Name)
	assert.Equal(t, "inactive", got.Status)

	_, cached = cache.Get("writer")
	assert.False(t, cached)

	resolved, err = svc.Resolve(context.Background(), "writer")
	require.NoError(t, err)
	assert.Equal(t, "Senior Writer", resolved.Name)
	assert.Equal(t, []string{constant.EventAgentUpdated}, sink.types())
}

func TestAgentService_Delete(t *testing.T) {
	store, _, sink, svc := newAgentFixture(t)

	require.NoError(t, svc.Delete(context.Background(), "writer"))
	assert.NotContains(t, store.agents, "writer")
	assert.Equal(t, []string{constant.EventAgentDeleted}, sink.types())

	assert.ErrorIs(t, svc.Delete(context.Background(), "writer"), entity.ErrAgentNotFound)
}
