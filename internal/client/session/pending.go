package session

import "sync"

// Pending remembers the username of a registration awaiting its
// confirmation code. It is never persisted.
type Pending struct {
	mu       sync.Mutex
	username string
}

func (p *Pending) Set(username string) {
	p.mu.Lock()
	p.username = username
	p.mu.Unlock()
}

// Get returns the pending username, if any.
func (p *Pending) Get() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.username, p.username != ""
}

func (p *Pending) Clear() {
	p.Set("")
}
