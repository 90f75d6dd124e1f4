package memory

import (
	"time"

	"ai-chat-workspace-be/pkg/store"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// StateRepository keeps one WorkspaceState per client session. Entries expire
// after ttl without access.
type StateRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewStateRepository(ttl time.Duration) *StateRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := cache.New(ttl, 10*time.Minute)
	// Evicted states are torn down so any hydration still running for them
	// commits nothing.
	c.OnEvicted(func(_ string, v interface{}) {
		if s, ok := v.(*store.WorkspaceState); ok {
			s.Teardown()
		}
	})
	return &StateRepository{
		cache: c,
		ttl:   ttl,
	}
}

// GetOrCreate returns the state for sessionId, creating an empty one owned by
// userId on first use. Every call refreshes the expiry.
func (r *StateRepository) GetOrCreate(sessionId string, userId uuid.UUID) *store.WorkspaceState {
	if x, found := r.cache.Get(sessionId); found {
		s := x.(*store.WorkspaceState)
		r.cache.Set(sessionId, s, cache.DefaultExpiration)
		return s
	}
	s := store.NewWorkspaceState(sessionId, userId)
	if err := r.cache.Add(sessionId, s, cache.DefaultExpiration); err != nil {
		// Lost a race with another request for the same session.
		if x, found := r.cache.Get(sessionId); found {
			return x.(*store.WorkspaceState)
		}
		r.cache.Set(sessionId, s, cache.DefaultExpiration)
	}
	return s
}

func (r *StateRepository) Get(sessionId string) (*store.WorkspaceState, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*store.WorkspaceState), true
	}
	return nil, false
}

// Delete tears the state down and forgets it.
func (r *StateRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}
