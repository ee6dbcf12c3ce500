package entity

import (
	"strings"
	"time"

	"agent-chat-be/pkg/artifact"
)

type AgentStatus string

const (
	AgentStatusActive     AgentStatus = "active"
	AgentStatusInactive   AgentStatus = "inactive"
	AgentStatusComingSoon AgentStatus = "coming_soon"

	ComingSoonCategoryPrefix = "coming_soon_"
)

type Agent struct {
	Id           string
	Name         string
	Description  string
	Speciality   string
	SystemPrompt string
	Greeting     string
	Suggestions  []string
	Color        string
	IconName     string
	Active       bool
	PremiumTier  int
	Category     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Status is derived: a coming_soon_ category wins over the active flag.
func (a *Agent) Status() AgentStatus {
	switch {
	case strings.HasPrefix(a.Category, ComingSoonCategoryPrefix):
		return AgentStatusComingSoon
	case a.Active:
		return AgentStatusActive
	default:
		return AgentStatusInactive
	}
}

// Profile is the view of the agent the artifact pipeline works with.
func (a *Agent) Profile() *artifact.AgentProfile {
	if a == nil {
		return nil
	}
	return &artifact.AgentProfile{
		ID:         a.Id,
		Name:       a.Name,
		Speciality: a.Speciality,
		Category:   a.Category,
	}
}
