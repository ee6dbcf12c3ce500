package specification

import (
	"strings"

	"agent-chat-be/internal/entity"

	"gorm.io/gorm"
)

// underscores are LIKE wildcards
var comingSoonPattern = strings.ReplaceAll(entity.ComingSoonCategoryPrefix, "_", `\_`) + "%"

// ActiveAgents keeps agents with the active flag set.
type ActiveAgents struct{}

func (s ActiveAgents) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

// ExcludeComingSoon drops agents whose category marks them as not yet released.
type ExcludeComingSoon struct{}

func (s ExcludeComingSoon) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category NOT LIKE ?", comingSoonPattern)
}

// ListedAgents is the public listing filter: active agents, plus coming-soon
// ones when requested.
type ListedAgents struct {
	IncludeComingSoon bool
}

func (s ListedAgents) Apply(db *gorm.DB) *gorm.DB {
	if s.IncludeComingSoon {
		return db.Where("active = ? OR category LIKE ?", true, comingSoonPattern)
	}
	return ExcludeComingSoon{}.Apply(ActiveAgents{}.Apply(db))
}
