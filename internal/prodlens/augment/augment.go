// Package augment asks a language model to supplement parts of a readiness
// report and turns its replies into report entries.
//
// The adapter never reports failure detail to its caller. Any problem with
// the call (no client configured, transport, credentials, non-2xx, timeout,
// empty reply) collapses into "unavailable", and any problem with the reply
// collapses into an empty parse result. Callers fall back to defaults in both
// cases.
package augment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/internal/prodlens/llm"
)

// Kind selects what the model is asked for.
type Kind string

const (
	// KindRisks has a prompt and reply shape but no caller in the report
	// pipeline; risks always come from the rule-based generator.
	KindRisks           Kind = "risks"
	KindRecommendations Kind = "recommendations"
	KindTestStrategy    Kind = "testStrategy"
)

// maxTokens bounds the length of every reply.
const maxTokens = 2000

var errUnavailable = errors.New("no language model configured")

// Options tune the model call.
type Options struct {
	Temperature float64
	// Timeout bounds a single call. Zero means 30s.
	Timeout time.Duration
}

// Adapter builds prompts, calls the model and hands back raw replies.
type Adapter struct {
	client llm.Client
	opts   Options
	logger *slog.Logger
}

// New creates an Adapter. A nil client yields an adapter that is never
// available.
func New(client llm.Client, opts Options, logger *slog.Logger) *Adapter {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Adapter{client: client, opts: opts, logger: logger}
}

// Available reports whether a model client is configured.
func (a *Adapter) Available() bool {
	return a != nil && a.client != nil
}

// Augment asks the model for kind and returns its raw reply. ok is false
// whenever no usable reply was obtained.
func (a *Adapter) Augment(ctx context.Context, cfg appconfig.AppConfig, kind Kind) (reply string, ok bool) {
	reply, err := a.generate(ctx, cfg, kind)
	if err != nil {
		if errors.Is(err, errUnavailable) {
			return "", false
		}
		a.logger.Warn("augmentation unavailable, using defaults",
			"kind", string(kind),
			"error", err,
		)
		return "", false
	}
	return reply, true
}

func (a *Adapter) generate(ctx context.Context, cfg appconfig.AppConfig, kind Kind) (string, error) {
	if !a.Available() {
		return "", errUnavailable
	}

	prompt, err := BuildPrompt(cfg, kind)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
	defer cancel()

	start := time.Now()
	reply, err := a.client.Chat(ctx, llm.Request{
		System:      SystemPrompt,
		Prompt:      prompt,
		Temperature: a.opts.Temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", a.client.Model(), err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("empty reply from %s", a.client.Model())
	}

	a.logger.Debug("augmentation reply received",
		"kind", string(kind),
		"model", a.client.Model(),
		"bytes", len(reply),
		"duration", time.Since(start),
	)
	return reply, nil
}
