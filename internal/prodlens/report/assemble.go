// Package report assembles the full production readiness report for an app
// configuration. Rule-based scoring and findings always run; test
// suggestions and recommendations come from the language model when one is
// available and from fixed defaults otherwise.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/internal/prodlens/augment"
	"github.com/build-flow-labs/prodlens/internal/prodlens/findings"
	"github.com/build-flow-labs/prodlens/internal/prodlens/score"
	"github.com/build-flow-labs/prodlens/schema"
)

// DefaultAppName is reported when the caller supplies no app name.
const DefaultAppName = "Untitled App"

const (
	maxTestSuggestions = 5
	maxRecommendations = 6
)

// Augmenter supplies raw model replies. *augment.Adapter implements it.
type Augmenter interface {
	Available() bool
	Augment(ctx context.Context, cfg appconfig.AppConfig, kind augment.Kind) (string, bool)
}

// Assembler builds AnalysisResults. It holds no per-request state and is
// safe for concurrent use.
type Assembler struct {
	weights   score.Weights
	augmenter Augmenter
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock replaces the clock used for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// NewAssembler creates an Assembler. A nil augmenter means every report uses
// the defaults.
func NewAssembler(weights score.Weights, augmenter Augmenter, logger *slog.Logger, opts ...Option) *Assembler {
	a := &Assembler{
		weights:   weights,
		augmenter: augmenter,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AIAvailable reports whether model augmentation is configured.
func (a *Assembler) AIAvailable() bool {
	return a.augmenter != nil && a.augmenter.Available()
}

// Assemble runs the full pipeline for cfg. The only error it returns wraps
// schema.ErrInvalidEntry: a model reply that carried a list of entries with
// at least one malformed entry.
func (a *Assembler) Assemble(ctx context.Context, cfg appconfig.AppConfig, appName string) (*schema.AnalysisResult, error) {
	if appName == "" {
		appName = DefaultAppName
	}
	timestamp := a.now().Format(time.RFC3339)

	categories := score.Categories(cfg)
	overall := score.Overall(categories, a.weights)

	var (
		suggestions     []schema.TestSuggestion
		recommendations []schema.Recommendation
	)
	if a.AIAvailable() {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			suggestions, err = a.testSuggestions(gctx, cfg)
			return err
		})
		g.Go(func() error {
			var err error
			recommendations, err = a.recommendations(gctx, cfg)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if len(suggestions) == 0 {
		suggestions = DefaultTestSuggestions()
	}
	if len(recommendations) == 0 {
		recommendations = DefaultRecommendations()
	}

	a.logger.Debug("report assembled",
		"app", appName,
		"overall_score", overall,
		"ai_available", a.AIAvailable(),
	)

	return &schema.AnalysisResult{
		AppName:         appName,
		Timestamp:       timestamp,
		OverallScore:    overall,
		Categories:      categories,
		Risks:           findings.Risks(cfg),
		Insights:        findings.Insights(cfg),
		TestSuggestions: suggestions,
		ScaleAnalysis:   DefaultScaleAnalysis(),
		Recommendations: recommendations,
	}, nil
}

func (a *Assembler) testSuggestions(ctx context.Context, cfg appconfig.AppConfig) ([]schema.TestSuggestion, error) {
	reply, ok := a.augmenter.Augment(ctx, cfg, augment.KindTestStrategy)
	if !ok {
		return nil, nil
	}
	out, err := augment.TestSuggestions(augment.Parse(reply), maxTestSuggestions)
	if err != nil {
		return nil, fmt.Errorf("decoding test suggestions: %w", err)
	}
	if len(out) == 0 {
		a.logger.Warn("model reply had no test suggestions, using defaults")
	}
	return out, nil
}

func (a *Assembler) recommendations(ctx context.Context, cfg appconfig.AppConfig) ([]schema.Recommendation, error) {
	reply, ok := a.augmenter.Augment(ctx, cfg, augment.KindRecommendations)
	if !ok {
		return nil, nil
	}
	out, err := augment.Recommendations(augment.Parse(reply), maxRecommendations)
	if err != nil {
		return nil, fmt.Errorf("decoding recommendations: %w", err)
	}
	if len(out) == 0 {
		a.logger.Warn("model reply had no recommendations, using defaults")
	}
	return out, nil
}
