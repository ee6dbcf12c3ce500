package artifact

import (
	"strings"

	"github.com/google/uuid"
)

// Decision is an Outcome plus the facts that led to it, for logging.
type Decision struct {
	Outcome        Outcome
	Path           SplitPath
	IntentDetected bool
}

// Orchestrator turns a completed reply into the UI outcome.
type Orchestrator struct {
	classifier Classifier
	newID      func() string
}

func NewOrchestrator(classifier Classifier) *Orchestrator {
	if classifier == nil {
		classifier = Heuristic{}
	}
	return &Orchestrator{
		classifier: classifier,
		newID:      uuid.NewString,
	}
}

// AllowsTools reports whether the tool path may be attempted for the agent.
func (o *Orchestrator) AllowsTools(agent *AgentProfile) bool {
	return CanUseTools(agent)
}

// RequestsDocument runs only the intent stage.
func (o *Orchestrator) RequestsDocument(userMessage string) bool {
	return o.classifier.ClassifyIntent(userMessage)
}

// FromText runs the heuristic path: intent, then structure, then split.
// Each stage only runs when the previous one accepted.
func (o *Orchestrator) FromText(fullContent, userMessage string, agent *AgentProfile) Decision {
	if agent == nil || IsDenylisted(agent) {
		return Decision{Outcome: Outcome{Content: fullContent}, Path: PathNone}
	}

	if !o.classifier.ClassifyIntent(userMessage) {
		return Decision{Outcome: Outcome{Content: fullContent}, Path: PathNone}
	}
	if !o.classifier.ScoreStructure(fullContent) {
		return Decision{Outcome: Outcome{Content: fullContent}, Path: PathNone, IntentDetected: true}
	}

	split := o.classifier.Split(fullContent)
	if !split.HasArtifact() {
		return Decision{Outcome: Outcome{Content: fullContent}, Path: PathNone, IntentDetected: true}
	}

	document := *split.ArtifactContent
	return Decision{
		Outcome: Outcome{
			Content:  split.MessageContent,
			Artifact: o.newArtifact(ExtractTitleFromContent(document), document),
		},
		Path:           split.Path,
		IntentDetected: true,
	}
}

// FromTool builds the outcome for a document the model created through the
// createDocument tool. The body is trusted as-is; an empty body yields no
// artifact.
func (o *Orchestrator) FromTool(title, body string) Decision {
	body = strings.TrimSpace(body)
	if body == "" {
		return Decision{Outcome: Outcome{Content: body}, Path: PathNone}
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = ExtractTitleFromContent(body)
	}
	title = truncateRunes(title, MaxTitleLength)

	return Decision{
		Outcome: Outcome{
			Content:  CannedPreamble(title),
			Artifact: o.newArtifact(title, body),
		},
		Path:           PathTool,
		IntentDetected: true,
	}
}

func (o *Orchestrator) newArtifact(title, content string) *Artifact {
	return &Artifact{
		ID:      o.newID(),
		Type:    KindText,
		Title:   title,
		Content: content,
	}
}
