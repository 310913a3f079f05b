package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-demo/internal/domain"
)

var (
	// ErrBusy is returned when a message is submitted while a reply is still pending.
	ErrBusy = errors.New("a reply is still pending")
	// ErrEmptyMessage rejects blank submissions.
	ErrEmptyMessage = errors.New("message text required")
)

type State string

const (
	StateIdle    State = "idle"
	StateWaiting State = "waiting"
)

// SessionOptions configure a Session. Zero values pick production defaults.
type SessionOptions struct {
	// ReplyDelay is waited before a local reply is appended.
	ReplyDelay time.Duration
	// RemoteTimeout bounds one remote reply including tool round trips.
	RemoteTimeout time.Duration
	Now           func() time.Time
	NewID         func() string
}

// Session is one conversation: an append-only message history and an Idle/Waiting state.
// Only one submit may be in flight at a time.
type Session struct {
	mu        sync.RWMutex
	messages  []domain.ChatMessage
	state     State
	aiEnabled bool

	resolver *Resolver
	cart     CartReader
	opts     SessionOptions
}

func NewSession(resolver *Resolver, shopperCart CartReader, opts SessionOptions) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	s := &Session{
		state:    StateIdle,
		resolver: resolver,
		cart:     shopperCart,
		opts:     opts,
	}
	s.messages = append(s.messages, domain.ChatMessage{
		ID:        opts.NewID(),
		Text:      GreetingText,
		Sender:    domain.SenderBot,
		Timestamp: opts.Now(),
		Role:      domain.MessageRoleAgent,
	})
	return s
}

// Submit appends the user's message, resolves a reply and appends it. The returned
// reply carries any notice for the shopper.
func (s *Session) Submit(ctx context.Context, text string, role domain.Role) (domain.ChatMessage, Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, Reply{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.state == StateWaiting {
		s.mu.Unlock()
		return domain.ChatMessage{}, Reply{}, ErrBusy
	}
	history := make([]domain.ChatMessage, len(s.messages))
	copy(history, s.messages)
	s.messages = append(s.messages, domain.ChatMessage{
		ID:        s.opts.NewID(),
		Text:      text,
		Sender:    domain.SenderUser,
		Timestamp: s.opts.Now(),
		Role:      messageRoleFor(role),
	})
	s.state = StateWaiting
	req := Request{Text: text, Role: role, History: history, AIEnabled: s.aiEnabled, Cart: s.cart}
	s.mu.Unlock()

	reply := s.resolve(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	msg := domain.ChatMessage{
		ID:        s.opts.NewID(),
		Text:      reply.Text,
		Sender:    domain.SenderBot,
		Timestamp: s.opts.Now(),
		Role:      reply.Role,
	}
	s.messages = append(s.messages, msg)
	s.state = StateIdle
	return msg, reply, nil
}

func (s *Session) resolve(ctx context.Context, req Request) Reply {
	if s.resolver.UseRemote(req) {
		if s.opts.RemoteTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.opts.RemoteTimeout)
			defer cancel()
		}
		return s.resolver.Resolve(ctx, req)
	}

	reply := s.resolver.Resolve(ctx, req)
	if s.opts.ReplyDelay > 0 {
		timer := time.NewTimer(s.opts.ReplyDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
	return reply
}

// History returns a copy of all messages in append order.
func (s *Session) History() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) SetAIEnabled(enabled bool) {
	s.mu.Lock()
	s.aiEnabled = enabled
	s.mu.Unlock()
}

func (s *Session) AIEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aiEnabled
}

func messageRoleFor(role domain.Role) domain.MessageRole {
	if role.CanManageStore() {
		return domain.MessageRoleAgent
	}
	return domain.MessageRoleVisitor
}
