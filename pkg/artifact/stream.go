package artifact

// StreamEventType is the vocabulary of the simulated document stream.
type StreamEventType string

const (
	EventTextDelta            StreamEventType = "text-delta"
	EventDocumentID           StreamEventType = "document-id"
	EventDocumentTitle        StreamEventType = "document-title"
	EventDocumentContentDelta StreamEventType = "document-content-delta"
	EventDocumentFinish       StreamEventType = "document-finish"
)

const DefaultChunkRunes = 40

type StreamEvent struct {
	Type    StreamEventType `json:"type"`
	ID      string          `json:"id,omitempty"`
	Title   string          `json:"title,omitempty"`
	Content string          `json:"content,omitempty"`
}

// StreamEvents replays a finished artifact as a typing stream: id, title,
// content deltas of chunkRunes characters, then finish. Concatenating the
// deltas yields the content exactly.
func StreamEvents(a Artifact, chunkRunes int) []StreamEvent {
	if chunkRunes <= 0 {
		chunkRunes = DefaultChunkRunes
	}

	runes := []rune(a.Content)
	events := make([]StreamEvent, 0, 3+len(runes)/chunkRunes+1)
	events = append(events,
		StreamEvent{Type: EventDocumentID, ID: a.ID},
		StreamEvent{Type: EventDocumentTitle, ID: a.ID, Title: a.Title},
	)

	for start := 0; start < len(runes); start += chunkRunes {
		end := min(start+chunkRunes, len(runes))
		events = append(events, StreamEvent{
			Type:    EventDocumentContentDelta,
			ID:      a.ID,
			Content: string(runes[start:end]),
		})
	}

	return append(events, StreamEvent{Type: EventDocumentFinish, ID: a.ID})
}
