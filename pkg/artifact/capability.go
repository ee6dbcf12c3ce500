package artifact

import "strings"

var (
	toolCategories = map[string]struct{}{
		"content":  {},
		"writing":  {},
		"creative": {},
	}
	toolAgentIDs = map[string]struct{}{
		"content":      {},
		"copywriter":   {},
		"uxwriter":     {},
		"scriptwriter": {},
	}
	toolKeywords = []string{
		"copywriter",
		"redator",
		"content creator",
		"criador de conteúdo",
		"roteirista",
		"escritor",
		"writer",
	}
)

// CanUseTools decides whether the createDocument tool is offered to the model
// for this agent. It is coarser than the split gate and keyed on the agent
// alone, never on the message.
func CanUseTools(agent *AgentProfile) bool {
	if agent == nil || IsDenylisted(agent) {
		return false
	}

	if _, ok := toolCategories[strings.ToLower(agent.Category)]; ok {
		return true
	}
	if _, ok := toolAgentIDs[agent.ID]; ok {
		return true
	}

	haystack := strings.ToLower(agent.Name + " " + agent.Speciality)
	for _, keyword := range toolKeywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
