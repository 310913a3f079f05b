package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"storefront-demo/internal/domain"
)

func TestChatFlow(t *testing.T) {
	env := newTestEnv(t, nil)
	sess := env.newSession(t)

	rec := env.do(http.MethodGet, "/chat/messages", sess.Token, "")
	var history chatHistoryResponse
	decode(t, rec, &history)
	if history.State != "idle" || len(history.Messages) != 1 || history.Messages[0].Sender != domain.SenderBot {
		t.Fatalf("unexpected initial history %+v", history)
	}

	rec = env.do(http.MethodPost, "/chat/messages", sess.Token, `{"text":"what is your return policy?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"source":"local"`) {
		t.Fatalf("expected local reply, got %s", rec.Body.String())
	}

	rec = env.do(http.MethodGet, "/chat/messages", sess.Token, "")
	decode(t, rec, &history)
	if len(history.Messages) != 3 || history.Messages[1].Role != domain.MessageRoleVisitor {
		t.Fatalf("unexpected history %+v", history.Messages)
	}

	if rec := env.do(http.MethodPost, "/chat/messages", sess.Token, `{"text":"   "}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank text, got %d", rec.Code)
	}
}

func TestChatSettings(t *testing.T) {
	env := newTestEnv(t, nil)
	sess := env.newSession(t)

	if rec := env.do(http.MethodGet, "/chat/settings", sess.Token, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for visitor, got %d", rec.Code)
	}

	sess.SetRole(domain.RoleOwner)
	rec := env.do(http.MethodPut, "/chat/settings", sess.Token, `{"apiKey":"sk-test","aiEnabled":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"hasApiKey":true`) || strings.Contains(rec.Body.String(), "sk-test") {
		t.Fatalf("unexpected settings body %s", rec.Body.String())
	}
	if !sess.Chat.AIEnabled() || !sess.AI.HasCredential() {
		t.Fatalf("expected settings applied to session")
	}
}
