package artifact

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestStreamEvents(t *testing.T) {
	a := Artifact{ID: "a1", Type: KindText, Title: "Título", Content: "ação rápida"}

	got := StreamEvents(a, 4)
	want := []StreamEvent{
		{Type: EventDocumentID, ID: "a1"},
		{Type: EventDocumentTitle, ID: "a1", Title: "Título"},
		{Type: EventDocumentContentDelta, ID: "a1", Content: "ação"},
		{Type: EventDocumentContentDelta, ID: "a1", Content: " ráp"},
		{Type: EventDocumentContentDelta, ID: "a1", Content: "ida"},
		{Type: EventDocumentFinish, ID: "a1"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("StreamEvents() mismatch (-want +got):\n%s", diff)
	}
}

func TestStreamEvents_DeltasRebuildContent(t *testing.T) {
	a := Artifact{ID: "a2", Title: "Doc", Content: productivityDocument()}

	var b strings.Builder
	for _, ev := range StreamEvents(a, 0) {
		if ev.Type == EventDocumentContentDelta {
			b.WriteString(ev.Content)
		}
	}
	assert.Equal(t, a.Content, b.String())
}

func TestPanelTransitions(t *testing.T) {
	box := BoundingBox{Top: 10, Left: 20, Width: 300, Height: 40}
	first := Artifact{ID: "first", Title: "One"}
	second := Artifact{ID: "second", Title: "Two"}

	p := NewPanel()
	assert.False(t, p.Visible)
	assert.Equal(t, StatusIdle, p.Status)

	p = p.Stream(first, box)
	assert.True(t, p.Visible)
	assert.Equal(t, StatusStreaming, p.Status)
	assert.Equal(t, box, p.BoundingBox)

	// a second artifact replaces the first; the stale finish is ignored
	p = p.Stream(second, box)
	p = p.Finish("first")
	assert.Equal(t, StatusStreaming, p.Status)
	assert.Equal(t, "second", p.Artifact.ID)

	p = p.Finish("second")
	assert.Equal(t, StatusIdle, p.Status)

	p = p.Close()
	assert.False(t, p.Visible)
	assert.Equal(t, "second", p.Artifact.ID)

	p = p.Show(first, BoundingBox{})
	assert.True(t, p.Visible)
	assert.Equal(t, StatusIdle, p.Status)
	assert.Equal(t, "first", p.Artifact.ID)
}
