package memory

import (
	"time"

	"agent-chat-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// AgentCache keeps agent records close to the chat path. Admin mutations
// invalidate it explicitly; entries otherwise live five minutes.
type AgentCache struct {
	cache *cache.Cache
}

func NewAgentCache() *AgentCache {
	return &AgentCache{
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *AgentCache) Get(id string) (*entity.Agent, bool) {
	if x, found := c.cache.Get(id); found {
		a := *x.(*entity.Agent)
		return &a, true
	}
	return nil, false
}

func (c *AgentCache) Set(agent *entity.Agent) {
	a := *agent
	c.cache.Set(agent.Id, &a, cache.DefaultExpiration)
}

func (c *AgentCache) Invalidate(id string) {
	c.cache.Delete(id)
}

func (c *AgentCache) Flush() {
	c.cache.Flush()
}
