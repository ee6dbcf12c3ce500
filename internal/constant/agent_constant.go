package constant

const (
	DefaultAgentColor    = "from-blue-500 to-purple-600"
	DefaultAgentIcon     = "lightbulb"
	DefaultAgentCategory = "general"
)

var DefaultAgentSuggestions = []string{
	"How do I get started?",
	"Give me a few tips",
	"What can you do?",
	"Help me with a project",
}

// AgentIcons is the icon set the UI can render.
var AgentIcons = map[string]struct{}{
	"lightbulb":      {},
	"code":           {},
	"pen-tool":       {},
	"camera":         {},
	"type":           {},
	"book-open":      {},
	"video":          {},
	"megaphone":      {},
	"palette":        {},
	"search":         {},
	"mail":           {},
	"trending-up":    {},
	"users":          {},
	"brain":          {},
	"sparkles":       {},
	"zap":            {},
	"target":         {},
	"shopping-cart":  {},
	"heart":          {},
	"message-square": {},
	"file-text":      {},
}

func IsKnownIcon(name string) bool {
	_, ok := AgentIcons[name]
	return ok
}

// Event names published on the bus.
const (
	TopicArtifactCreated = "artifact.created"

	EventChatTurnCompleted = "CHAT_TURN_COMPLETED"
	EventArtifactCreated   = "ARTIFACT_CREATED"
	EventAgentCreated      = "AGENT_CREATED"
	EventAgentUpdated      = "AGENT_UPDATED"
	EventAgentDeleted      = "AGENT_DELETED"
)
