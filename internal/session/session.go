package session

import (
	"sync"
	"time"

	"storefront-demo/internal/cart"
	"storefront-demo/internal/chat"
	"storefront-demo/internal/domain"
	"storefront-demo/internal/llm"
)

// Session is one storefront visitor context: acting role, cart, chat and AI credential.
type Session struct {
	ID        string
	ClientID  string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time

	Cart *cart.Store
	Chat *chat.Session
	AI   *llm.Config

	mu   sync.RWMutex
	role domain.Role
}

func (s *Session) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Session) SetRole(r domain.Role) {
	s.mu.Lock()
	s.role = r
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
