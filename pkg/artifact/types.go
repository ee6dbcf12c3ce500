package artifact

// Kind is the artifact content kind. Only text documents are produced today.
type Kind string

const (
	KindText Kind = "text"

	// Declared for the panel contract; nothing produces these yet.
	KindCode  Kind = "code"
	KindImage Kind = "image"
	KindSheet Kind = "sheet"
)

// Artifact is the document detached from an assistant reply. Field names and
// JSON tags are the wire contract with the UI.
type Artifact struct {
	ID      string `json:"id"`
	Type    Kind   `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Outcome is what a chat turn hands back to the UI. Artifact is null when the
// reply stays inline.
type Outcome struct {
	Content  string    `json:"content"`
	Artifact *Artifact `json:"artifact"`
}

// AgentProfile is the slice of an agent the pipeline looks at.
type AgentProfile struct {
	ID         string
	Name       string
	Speciality string
	Category   string
}
