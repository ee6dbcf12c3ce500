package artifact

// Status is the panel's playback state.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusStreaming Status = "streaming"
)

// BoundingBox is the screen rectangle the panel animates from.
type BoundingBox struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Panel is the single artifact slot of a UI session. Transitions return a new
// value; opening an artifact replaces whatever was open before.
type Panel struct {
	Artifact    *Artifact   `json:"artifact"`
	Visible     bool        `json:"is_visible"`
	Status      Status      `json:"status"`
	BoundingBox BoundingBox `json:"bounding_box"`
}

// NewPanel returns the closed, idle slot.
func NewPanel() Panel {
	return Panel{Status: StatusIdle}
}

// Stream opens a freshly created artifact and starts playback.
func (p Panel) Stream(a Artifact, box BoundingBox) Panel {
	return Panel{Artifact: &a, Visible: true, Status: StatusStreaming, BoundingBox: box}
}

// Show opens an existing artifact without playback.
func (p Panel) Show(a Artifact, box BoundingBox) Panel {
	return Panel{Artifact: &a, Visible: true, Status: StatusIdle, BoundingBox: box}
}

// Finish ends playback. It is a no-op when a different artifact has replaced
// the one that finished.
func (p Panel) Finish(artifactID string) Panel {
	if p.Artifact == nil || p.Artifact.ID != artifactID {
		return p
	}
	p.Status = StatusIdle
	return p
}

// Close hides the panel and keeps the last artifact for reopening.
func (p Panel) Close() Panel {
	p.Visible = false
	p.Status = StatusIdle
	return p
}
