package expert

import "sync"

// SessionCache holds one lazily-constructed orchestrator per session
// key. Get-or-create is atomic, so two concurrent first requests from
// the same session resolve to a single instance.
type SessionCache struct {
	mu            sync.Mutex
	orchestrators map[string]*Orchestrator
	factory       func(session string) *Orchestrator
}

// NewSessionCache creates a cache constructing orchestrators through
// the given factory.
func NewSessionCache(factory func(session string) *Orchestrator) *SessionCache {
	return &SessionCache{
		orchestrators: make(map[string]*Orchestrator),
		factory:       factory,
	}
}

// Get returns the orchestrator for a session, constructing it on first
// use.
func (c *SessionCache) Get(session string) *Orchestrator {
	c.mu.Lock()
	defer c.mu.Unlock()
	if o, ok := c.orchestrators[session]; ok {
		return o
	}
	o := c.factory(session)
	c.orchestrators[session] = o
	return o
}

// Delete removes a session's orchestrator.
func (c *SessionCache) Delete(session string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.orchestrators, session)
}

// Len returns the number of cached sessions.
func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.orchestrators)
}
