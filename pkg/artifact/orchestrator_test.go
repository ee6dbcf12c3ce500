package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrchestrator() *Orchestrator {
	o := NewOrchestrator(nil)
	o.newID = func() string { return "artifact-1" }
	return o
}

func TestOrchestrator_FromText(t *testing.T) {
	o := newTestOrchestrator()

	got := o.FromText(productivityReply(), "Crie um documento sobre produtividade", contentAgent)

	require.NotNil(t, got.Outcome.Artifact)
	assert.True(t, got.IntentDetected)
	assert.Equal(t, PathMarker, got.Path)
	assert.Equal(t, productivityPreamble, got.Outcome.Content)
	assert.Equal(t, Artifact{
		ID:      "artifact-1",
		Type:    KindText,
		Title:   "Produtividade no dia a dia",
		Content: productivityDocument(),
	}, *got.Outcome.Artifact)
}

func TestOrchestrator_FromText_NoIntent(t *testing.T) {
	o := newTestOrchestrator()
	reply := productivityReply()

	got := o.FromText(reply, "Qual a capital da França?", contentAgent)

	assert.Nil(t, got.Outcome.Artifact)
	assert.False(t, got.IntentDetected)
	assert.Equal(t, reply, got.Outcome.Content)
}

func TestOrchestrator_FromText_Idempotent(t *testing.T) {
	o := newTestOrchestrator()
	first := o.FromText(productivityReply(), "Crie um documento sobre produtividade", contentAgent)
	second := o.FromText(productivityReply(), "Crie um documento sobre produtividade", contentAgent)
	assert.Equal(t, first, second)
}

type stubClassifier struct {
	intent, structured bool
	calls              []string
}

func (s *stubClassifier) ClassifyIntent(string) bool {
	s.calls = append(s.calls, "intent")
	return s.intent
}

func (s *stubClassifier) ScoreStructure(string) bool {
	s.calls = append(s.calls, "structure")
	return s.structured
}

func (s *stubClassifier) Split(content string) SplitResult {
	s.calls = append(s.calls, "split")
	return SplitStructured(content)
}

func TestOrchestrator_StagesShortCircuit(t *testing.T) {
	tests := []struct {
		name       string
		classifier *stubClassifier
		wantCalls  []string
	}{
		{"intent rejects", &stubClassifier{}, []string{"intent"}},
		{"structure rejects", &stubClassifier{intent: true}, []string{"intent", "structure"}},
		{"all stages", &stubClassifier{intent: true, structured: true}, []string{"intent", "structure", "split"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrchestrator(tt.classifier)
			o.FromText(productivityReply(), "anything", contentAgent)
			assert.Equal(t, tt.wantCalls, tt.classifier.calls)
		})
	}
}

func TestOrchestrator_FromTool(t *testing.T) {
	o := newTestOrchestrator()

	got := o.FromTool("Plano de Conteúdo", "## Semana 1\n\nPublicar dois posts.")

	require.NotNil(t, got.Outcome.Artifact)
	assert.Equal(t, PathTool, got.Path)
	assert.Equal(t, CannedPreamble("Plano de Conteúdo"), got.Outcome.Content)
	assert.Equal(t, "Plano de Conteúdo", got.Outcome.Artifact.Title)
	assert.Equal(t, "## Semana 1\n\nPublicar dois posts.", got.Outcome.Artifact.Content)
}

func TestOrchestrator_FromTool_EmptyBody(t *testing.T) {
	got := newTestOrchestrator().FromTool("Plano", "   ")
	assert.Nil(t, got.Outcome.Artifact)
	assert.Equal(t, PathNone, got.Path)
}

func TestOrchestrator_FromTool_TitleFromBody(t *testing.T) {
	got := newTestOrchestrator().FromTool("", "# Roteiro do episódio\n\nCena 1")
	require.NotNil(t, got.Outcome.Artifact)
	assert.Equal(t, "Roteiro do episódio", got.Outcome.Artifact.Title)
}

func TestCanUseTools(t *testing.T) {
	tests := []struct {
		name  string
		agent *AgentProfile
		want  bool
	}{
		{"nil", nil, false},
		{"content category", &AgentProfile{ID: "x", Category: "Writing"}, true},
		{"allowed id", &AgentProfile{ID: "copywriter"}, true},
		{"keyword in speciality", &AgentProfile{ID: "y", Speciality: "Roteirista de vídeos curtos"}, true},
		{"denylisted", &AgentProfile{ID: "dev-assistant", Category: "content"}, false},
		{"unrelated", &AgentProfile{ID: "finance", Name: "Consultor Financeiro", Category: "business"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanUseTools(tt.agent))
		})
	}
}
