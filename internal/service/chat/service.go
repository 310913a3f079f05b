package chat

import (
	"context"
	"io"
	"log"

	"storefront-demo/internal/chat"
	"storefront-demo/internal/domain"
	"storefront-demo/internal/session"
)

type keySaver interface {
	SaveAPIKey(ctx context.Context, s *session.Session, apiKey string) error
}

// Service exposes the session conversation and the store-manager AI settings.
type Service struct {
	keys   keySaver
	logger *log.Logger
}

func New(keys keySaver, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{keys: keys, logger: logger}
}

// Settings is what a store manager sees. The credential itself is never returned.
type Settings struct {
	HasAPIKey   bool `json:"hasApiKey"`
	AIEnabled   bool `json:"aiEnabled"`
	Initialized bool `json:"initialized"`
}

// SettingsInput leaves fields that are nil unchanged. An empty APIKey clears the stored one.
type SettingsInput struct {
	APIKey    *string `json:"apiKey"`
	AIEnabled *bool   `json:"aiEnabled"`
}

// Exchange is the outcome of one submit: the bot message appended to the history and how it was produced.
type Exchange struct {
	Message domain.ChatMessage `json:"message"`
	Source  chat.Source        `json:"source"`
	Notice  string             `json:"notice,omitempty"`
}

func (s *Service) Submit(ctx context.Context, sess *session.Session, text string) (Exchange, error) {
	msg, reply, err := sess.Chat.Submit(ctx, text, sess.Role())
	if err != nil {
		return Exchange{}, err
	}
	if reply.Notice != "" {
		s.logger.Printf("chat service: session=%s source=%s notice=%q", sess.ID, reply.Source, reply.Notice)
	}
	return Exchange{Message: msg, Source: reply.Source, Notice: reply.Notice}, nil
}

func (s *Service) History(_ context.Context, sess *session.Session) []domain.ChatMessage {
	return sess.Chat.History()
}

func (s *Service) Settings(_ context.Context, sess *session.Session) (Settings, error) {
	if !sess.Role().CanManageStore() {
		return Settings{}, domain.ErrForbidden
	}
	return s.view(sess), nil
}

func (s *Service) SaveSettings(ctx context.Context, sess *session.Session, in SettingsInput) (Settings, error) {
	if !sess.Role().CanManageStore() {
		return Settings{}, domain.ErrForbidden
	}
	if in.APIKey != nil {
		if err := s.keys.SaveAPIKey(ctx, sess, *in.APIKey); err != nil {
			return Settings{}, err
		}
		s.logger.Printf("chat service: session=%s credential updated set=%t", sess.ID, *in.APIKey != "")
	}
	if in.AIEnabled != nil {
		sess.Chat.SetAIEnabled(*in.AIEnabled)
	}
	return s.view(sess), nil
}

func (s *Service) view(sess *session.Session) Settings {
	return Settings{
		HasAPIKey:   sess.AI.HasCredential(),
		AIEnabled:   sess.Chat.AIEnabled(),
		Initialized: sess.AI.Initialized(),
	}
}
