// Package session issues storefront sessions and resolves them from opaque tokens.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"log"
	mathrand "math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-demo/internal/cart"
	"storefront-demo/internal/chat"
	"storefront-demo/internal/domain"
	"storefront-demo/internal/llm"
	"storefront-demo/internal/settings"
)

// ErrInvalidToken indicates the token is unknown or expired.
var ErrInvalidToken = errors.New("invalid token")

const defaultTTL = 3 * time.Hour

// Deps are shared by every session the manager creates.
type Deps struct {
	Products   chat.ProductSource
	Settings   settings.Store
	AI         llm.Options
	HTTPClient *http.Client
	ReplyDelay time.Duration
	// NewRand seeds the local responder of each session. Nil seeds from the clock.
	NewRand func() *mathrand.Rand
	Logger  *log.Logger
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	deps     Deps
	now      func() time.Time
}

func NewManager(deps Deps, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard, "", 0)
	}
	if deps.Settings == nil {
		deps.Settings = settings.NewMemoryStore()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		deps:     deps,
		now:      time.Now,
	}
}

// Issue creates a session for clientID, restoring the stored AI credential for that client.
// An empty clientID makes the session its own client.
func (m *Manager) Issue(ctx context.Context, clientID string) (*Session, error) {
	token, err := randomToken()
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	if clientID == "" {
		clientID = id
	}

	opts := m.deps.AI
	if stored, err := m.deps.Settings.Get(ctx, clientID, settings.APIKeyKey); err == nil {
		opts.APIKey = stored
	} else if !errors.Is(err, settings.ErrMissing) {
		m.deps.Logger.Printf("session: load settings client_id=%s error=%v", clientID, err)
	}

	aiCfg := llm.NewConfig(opts)
	client := llm.NewClient(aiCfg, m.deps.HTTPClient, m.deps.Logger)
	var rng *mathrand.Rand
	if m.deps.NewRand != nil {
		rng = m.deps.NewRand()
	}
	resolver := chat.NewResolver(
		chat.NewLocalResponder(rng),
		chat.NewRemoteResponder(client, m.deps.Products, m.deps.Logger),
		aiCfg,
		m.deps.Logger,
	)
	cartStore := cart.NewStore()

	now := m.now()
	s := &Session{
		ID:        id,
		ClientID:  clientID,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
		Cart:      cartStore,
		Chat: chat.NewSession(resolver, cartStore, chat.SessionOptions{
			ReplyDelay:    m.deps.ReplyDelay,
			RemoteTimeout: aiCfg.Timeout(),
		}),
		AI:   aiCfg,
		role: domain.DefaultRole,
	}

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()
	m.deps.Logger.Printf("session: issued id=%s client_id=%s", s.ID, clientID)
	return s, nil
}

// Lookup returns the live session for token.
func (m *Manager) Lookup(token string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidToken
	}
	if s.expired(m.now()) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, ErrInvalidToken
	}
	return s, nil
}

// SaveAPIKey persists the credential for the session's client and reconfigures its AI client.
func (m *Manager) SaveAPIKey(ctx context.Context, s *Session, apiKey string) error {
	var err error
	if apiKey == "" {
		err = m.deps.Settings.Delete(ctx, s.ClientID, settings.APIKeyKey)
	} else {
		err = m.deps.Settings.Set(ctx, s.ClientID, settings.APIKeyKey, apiKey)
	}
	if err != nil {
		return err
	}
	s.AI.Reconfigure(apiKey)
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (m *Manager) Sweep() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for token, s := range m.sessions {
		if s.expired(now) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.deps.Logger.Printf("session: swept expired count=%d", n)
			}
		}
	}
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
