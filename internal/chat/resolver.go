// Package chat decides how storefront chat messages are answered and keeps per-session history.
package chat

import (
	"context"
	"io"
	"log"

	"storefront-demo/internal/domain"
)

// Source names the responder that produced a reply.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Notices surfaced to the shopper next to a reply.
const (
	NoticeMissingKey  = "API key missing: please set your DeepSeek API key in the settings."
	NoticeRemoteError = "AI response error: failed to get a response from the assistant."
)

// CredentialChecker reports whether a remote credential is configured.
type CredentialChecker interface {
	HasCredential() bool
}

// Request is one submitted message with the context needed to answer it.
type Request struct {
	Text      string
	Role      domain.Role
	History   []domain.ChatMessage
	AIEnabled bool
	Cart      CartReader
}

type Reply struct {
	Text   string             `json:"text"`
	Role   domain.MessageRole `json:"role"`
	Source Source             `json:"source"`
	Notice string             `json:"notice,omitempty"`
}

// Resolver routes a request to the local or the remote responder. It never fails: remote
// errors become an apology reply with a notice.
type Resolver struct {
	local  *LocalResponder
	remote *RemoteResponder
	creds  CredentialChecker
	logger *log.Logger
}

func NewResolver(local *LocalResponder, remote *RemoteResponder, creds CredentialChecker, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Resolver{local: local, remote: remote, creds: creds, logger: logger}
}

// UseRemote reports whether req would be sent to the remote responder.
func (r *Resolver) UseRemote(req Request) bool {
	return r.remote != nil && r.hasCredential() && req.AIEnabled && req.Role.CanManageStore()
}

func (r *Resolver) Resolve(ctx context.Context, req Request) Reply {
	if !r.UseRemote(req) {
		reply := Reply{Text: r.local.Respond(req.Text), Role: domain.MessageRoleAgent, Source: SourceLocal}
		if req.AIEnabled && req.Role.CanManageStore() && !r.hasCredential() {
			reply.Notice = NoticeMissingKey
		}
		return reply
	}

	text, err := r.remote.Respond(ctx, req.Text, req.History, req.Cart)
	if err != nil {
		r.logger.Printf("chat: remote responder error=%v", err)
		return Reply{Text: ApologyText, Role: domain.MessageRoleDeepSeek, Source: SourceRemote, Notice: NoticeRemoteError}
	}
	return Reply{Text: text, Role: domain.MessageRoleDeepSeek, Source: SourceRemote}
}

func (r *Resolver) hasCredential() bool {
	return r.creds != nil && r.creds.HasCredential()
}
