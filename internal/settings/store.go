// Package settings is the per-client key/value store that stands in for browser local storage.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// APIKeyKey is the fixed key the AI credential is stored under.
const APIKeyKey = "deepseek_api_key"

// ErrMissing is returned by Get when no value is stored.
var ErrMissing = errors.New("setting not found")

type Store interface {
	Get(ctx context.Context, clientID, key string) (string, error)
	Set(ctx context.Context, clientID, key, value string) error
	Delete(ctx context.Context, clientID, key string) error
}

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, clientID, key string) (string, error) {
	m.mu.RLock()
	v, ok := m.values[storageKey(clientID, key)]
	m.mu.RUnlock()
	if !ok {
		return "", ErrMissing
	}
	return v, nil
}

func (m *MemoryStore) Set(_ context.Context, clientID, key, value string) error {
	m.mu.Lock()
	m.values[storageKey(clientID, key)] = value
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, clientID, key string) error {
	m.mu.Lock()
	delete(m.values, storageKey(clientID, key))
	m.mu.Unlock()
	return nil
}

func storageKey(clientID, key string) string {
	return fmt.Sprintf("settings:%s:%s", clientID, key)
}
