// Package llm provides minimal chat clients for the language-model providers
// prodlens can use to augment its reports.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client sends one chat exchange and returns the model's text reply.
type Client interface {
	Chat(ctx context.Context, req Request) (string, error)
	Model() string
}

// Request is a single-turn chat exchange.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Provider represents the LLM provider type.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderClaude Provider = "claude"
)

// ErrNoAPIKey is returned when a provider is selected without a key.
var ErrNoAPIKey = errors.New("no API key configured")

// Config selects and configures a provider.
type Config struct {
	Provider Provider
	APIKey   string
	Model    string
	// BaseURL overrides the provider endpoint (for testing).
	BaseURL string
	Timeout time.Duration
}

// New creates a Client for cfg.Provider. An empty provider means OpenAI.
func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}

	switch Provider(strings.ToLower(string(cfg.Provider))) {
	case ProviderOpenAI, "":
		c := NewOpenAI(cfg.APIKey, cfg.Model, httpClient)
		if cfg.BaseURL != "" {
			c.baseURL = strings.TrimSuffix(cfg.BaseURL, "/")
		}
		return c, nil
	case ProviderClaude:
		c := NewClaude(cfg.APIKey, cfg.Model, httpClient)
		if cfg.BaseURL != "" {
			c.baseURL = strings.TrimSuffix(cfg.BaseURL, "/")
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: openai, claude)", cfg.Provider)
	}
}
