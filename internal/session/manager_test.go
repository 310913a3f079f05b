package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-demo/internal/catalog"
	"storefront-demo/internal/domain"
	"storefront-demo/internal/llm"
	"storefront-demo/internal/settings"
)

type failingSettings struct{}

func (failingSettings) Get(context.Context, string, string) (string, error) {
	return "", errors.New("redis down")
}
func (failingSettings) Set(context.Context, string, string, string) error {
	return errors.New("redis down")
}
func (failingSettings) Delete(context.Context, string, string) error {
	return errors.New("redis down")
}

func newManager(t *testing.T, store settings.Store) *Manager {
	t.Helper()
	return NewManager(Deps{
		Products: catalog.New(catalog.SampleProducts()),
		Settings: store,
		AI:       llm.Options{URL: "http://127.0.0.1:0/unused"},
	}, time.Hour)
}

func TestIssueAndLookup(t *testing.T) {
	m := newManager(t, settings.NewMemoryStore())

	s, err := m.Issue(context.Background(), "browser-1")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Token)
	assert.Equal(t, "browser-1", s.ClientID)
	assert.Equal(t, domain.RoleVisitor, s.Role())
	assert.Len(t, s.Chat.History(), 1)
	assert.False(t, s.AI.HasCredential())

	got, err := m.Lookup(s.Token)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Lookup("nope")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueWithoutClientUsesSessionID(t *testing.T) {
	m := newManager(t, nil)

	s, err := m.Issue(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, s.ID, s.ClientID)
}

func TestSessionsAreIsolated(t *testing.T) {
	m := newManager(t, nil)
	ctx := context.Background()

	a, err := m.Issue(ctx, "a")
	require.NoError(t, err)
	b, err := m.Issue(ctx, "b")
	require.NoError(t, err)

	p := catalog.SampleProducts()[0]
	a.Cart.AddItem(p)
	a.SetRole(domain.RoleOwner)

	assert.Equal(t, 1, a.Cart.TotalItems())
	assert.Equal(t, 0, b.Cart.TotalItems())
	assert.Equal(t, domain.RoleVisitor, b.Role())
	assert.NotEqual(t, a.Token, b.Token)
}

func TestIssueRestoresStoredCredential(t *testing.T) {
	store := settings.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "browser-1", settings.APIKeyKey, "sk-stored"))
	m := newManager(t, store)

	s, err := m.Issue(ctx, "browser-1")
	require.NoError(t, err)
	assert.True(t, s.AI.HasCredential())

	other, err := m.Issue(ctx, "browser-2")
	require.NoError(t, err)
	assert.False(t, other.AI.HasCredential())
}

func TestIssueToleratesSettingsFailure(t *testing.T) {
	m := newManager(t, failingSettings{})

	s, err := m.Issue(context.Background(), "browser-1")
	require.NoError(t, err)
	assert.False(t, s.AI.HasCredential())
}

func TestSaveAPIKey(t *testing.T) {
	store := settings.NewMemoryStore()
	m := newManager(t, store)
	ctx := context.Background()

	s, err := m.Issue(ctx, "browser-1")
	require.NoError(t, err)

	require.NoError(t, m.SaveAPIKey(ctx, s, "sk-new"))
	assert.True(t, s.AI.HasCredential())
	assert.False(t, s.AI.Initialized())
	v, err := store.Get(ctx, "browser-1", settings.APIKeyKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-new", v)

	require.NoError(t, m.SaveAPIKey(ctx, s, ""))
	assert.False(t, s.AI.HasCredential())
	_, err = store.Get(ctx, "browser-1", settings.APIKeyKey)
	assert.ErrorIs(t, err, settings.ErrMissing)
}

func TestSaveAPIKeyStoreFailureKeepsCredential(t *testing.T) {
	m := newManager(t, failingSettings{})
	s, err := m.Issue(context.Background(), "browser-1")
	require.NoError(t, err)

	err = m.SaveAPIKey(context.Background(), s, "sk-new")
	assert.Error(t, err)
	assert.False(t, s.AI.HasCredential())
}

func TestExpiredSessions(t *testing.T) {
	m := newManager(t, nil)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	s, err := m.Issue(context.Background(), "")
	require.NoError(t, err)
	keep, err := m.Issue(context.Background(), "")
	require.NoError(t, err)
	keep.ExpiresAt = now.Add(48 * time.Hour)

	now = now.Add(2 * time.Hour)
	_, err = m.Lookup(s.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	assert.Equal(t, 0, m.Sweep())
	_, err = m.Lookup(keep.Token)
	assert.NoError(t, err)

	now = now.Add(72 * time.Hour)
	assert.Equal(t, 1, m.Sweep())
}
