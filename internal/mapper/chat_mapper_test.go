package mapper

import (
	"testing"
	"time"

	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/model"
	"agent-chat-be/pkg/artifact"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestMessageMapping_ArtifactColumn(t *testing.T) {
	m := NewChatMapper()
	msg := &entity.Message{
		Id:      uuid.New(),
		ChatId:  uuid.New(),
		Role:    entity.MessageRoleAssistant,
		Content: "Prepared the plano you requested.",
		Artifact: &entity.Artifact{
			ID: "a1", Type: artifact.KindText, Title: "Plano", Content: "# Plano",
		},
		CreatedAt: time.Now(),
	}

	row, err := m.MessageToModel(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a1","type":"text","title":"Plano","content":"# Plano"}`, string(row.Artifacts))

	back := m.MessageToEntity(row)
	assert.Equal(t, msg.Artifact, back.Artifact)
}

func TestMessageToEntity_NoArtifact(t *testing.T) {
	m := NewChatMapper()
	tests := []struct {
		name string
		raw  datatypes.JSON
	}{
		{"empty column", nil},
		{"json null", datatypes.JSON("null")},
		{"malformed", datatypes.JSON("{not json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MessageToEntity(&model.Message{Role: "assistant", Artifacts: tt.raw})
			assert.Nil(t, got.Artifact)
		})
	}
}
