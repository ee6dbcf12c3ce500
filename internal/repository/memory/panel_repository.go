package memory

import (
	"sync"
	"time"

	"agent-chat-be/pkg/artifact"

	"github.com/patrickmn/go-cache"
)

// PanelRepository holds the single artifact panel slot of each session.
// Slots expire an hour after their last change.
type PanelRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewPanelRepository() *PanelRepository {
	return &PanelRepository{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

// Get returns the panel of a session, or the closed idle panel.
func (r *PanelRepository) Get(sessionKey string) artifact.Panel {
	if x, found := r.cache.Get(sessionKey); found {
		return x.(artifact.Panel)
	}
	return artifact.NewPanel()
}

// Update applies fn to the current panel and stores the result atomically.
func (r *PanelRepository) Update(sessionKey string, fn func(artifact.Panel) artifact.Panel) artifact.Panel {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := fn(r.Get(sessionKey))
	r.cache.Set(sessionKey, next, cache.DefaultExpiration)
	return next
}

func (r *PanelRepository) Delete(sessionKey string) {
	r.cache.Delete(sessionKey)
}
