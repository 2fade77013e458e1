// ABOUTME: Observable holder for the authenticated user's profile
// ABOUTME: Single-slot broadcast: latest value replayed to new subscribers

package session

import (
	"sync"

	"github.com/milhasdev/milhas-cli/internal/api"
)

// State holds the current user profile, or nil when unauthenticated.
// Every Set notifies all subscribers; subscribing delivers the current value
// immediately. Only the latest value is retained.
type State struct {
	mu      sync.Mutex
	current *api.UserProfile
	subs    map[int]func(*api.UserProfile)
	nextID  int
}

// New creates an empty session state.
func New() *State {
	return &State{subs: make(map[int]func(*api.UserProfile))}
}

// Current returns the profile as of the last Set, or nil.
func (s *State) Current() *api.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set replaces the current profile and notifies every subscriber.
// Pass nil to mark the session as unauthenticated.
func (s *State) Set(p *api.UserProfile) {
	s.mu.Lock()
	s.current = p
	subs := make([]func(*api.UserProfile), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(p)
	}
}

// Subscribe registers fn and immediately invokes it with the current value.
// The returned function unsubscribes; calling it more than once is safe.
func (s *State) Subscribe(fn func(*api.UserProfile)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
