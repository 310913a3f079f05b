// Package llm talks to an OpenAI-compatible chat completions endpoint such as DeepSeek.
package llm

import (
	"strings"
	"sync"
	"time"
)

const (
	DefaultURL         = "https://api.deepseek.com/v1/chat/completions"
	DefaultModel       = "deepseek-chat"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
	DefaultTimeout     = 8 * time.Second
)

// Options are the static parts of a Config.
type Options struct {
	URL         string
	Model       string
	APIKey      string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Config holds the credential and endpoint settings for one conversation owner.
// Reconfigure swaps the credential and clears the initialized flag so the next call
// starts from a fresh client state.
type Config struct {
	mu          sync.RWMutex
	opts        Options
	initialized bool
}

func NewConfig(opts Options) *Config {
	if opts.URL == "" {
		opts.URL = DefaultURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Temperature == 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	opts.APIKey = strings.TrimSpace(opts.APIKey)
	return &Config{opts: opts}
}

// Reconfigure replaces the credential and resets initialization.
func (c *Config) Reconfigure(apiKey string) {
	c.mu.Lock()
	c.opts.APIKey = strings.TrimSpace(apiKey)
	c.initialized = false
	c.mu.Unlock()
}

func (c *Config) HasCredential() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.APIKey != ""
}

func (c *Config) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

func (c *Config) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.Timeout
}

// snapshot returns the current options and marks the config initialized.
// The bool reports whether this call performed the initialization.
func (c *Config) snapshot() (Options, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	first := !c.initialized
	c.initialized = true
	return c.opts, first
}
