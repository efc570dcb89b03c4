// Package config loads prodlens settings. Settings are resolved once at
// startup from built-in defaults, an optional YAML file and the environment,
// in that order, and are passed by value afterwards.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/build-flow-labs/prodlens/internal/prodlens/llm"
	"github.com/build-flow-labs/prodlens/internal/prodlens/score"
)

const (
	// APITitle and APIVersion identify the service on its root endpoint.
	APITitle       = "ProdLens AI API"
	APIVersion     = "1.0.0"
	APIDescription = "Production Readiness Analyzer for Low-Code Apps"
)

// Settings is the resolved service configuration.
type Settings struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	LLM     LLM           `yaml:"llm"`
	Weights score.Weights `yaml:"weights"`
	Limits  Limits        `yaml:"limits"`
}

// LLM configures the optional language model used for augmentation.
type LLM struct {
	Provider     llm.Provider  `yaml:"provider"`
	OpenAIKey    string        `yaml:"openai_api_key"`
	OpenAIModel  string        `yaml:"openai_model"`
	AnthropicKey string        `yaml:"anthropic_api_key"`
	ClaudeModel  string        `yaml:"claude_model"`
	BaseURL      string        `yaml:"base_url"`
	Temperature  float64       `yaml:"temperature"`
	Timeout      time.Duration `yaml:"timeout"`
}

// Limits are reserved: they are loaded and logged but nothing enforces them.
type Limits struct {
	MaxAnalysisTime time.Duration `yaml:"max_analysis_time"`
	BatchSize       int           `yaml:"batch_size"`
	MaxFileSize     int64         `yaml:"max_file_size"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Addr: ":8000",
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		LLM: LLM{
			Provider:    llm.ProviderOpenAI,
			OpenAIModel: "gpt-3.5-turbo",
			Temperature: 0.7,
			Timeout:     30 * time.Second,
		},
		Weights: score.DefaultWeights,
		Limits: Limits{
			MaxAnalysisTime: 60 * time.Second,
			BatchSize:       5,
			MaxFileSize:     10 * 1024 * 1024,
		},
	}
}

// Load resolves settings. path names an optional YAML file; an empty path
// skips it. The result is validated.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("reading settings: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := s.applyEnv(os.LookupEnv); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("PRODLENS_ADDR", &s.Addr)
	str("OPENAI_API_KEY", &s.LLM.OpenAIKey)
	str("OPENAI_MODEL", &s.LLM.OpenAIModel)
	str("ANTHROPIC_API_KEY", &s.LLM.AnthropicKey)
	str("CLAUDE_MODEL", &s.LLM.ClaudeModel)

	if v, ok := lookup("LLM_PROVIDER"); ok && v != "" {
		s.LLM.Provider = llm.Provider(strings.ToLower(v))
	}
	if v, ok := lookup("PRODLENS_ALLOWED_ORIGINS"); ok && v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		s.AllowedOrigins = origins
	}
	if v, ok := lookup("OPENAI_TEMPERATURE"); ok && v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("OPENAI_TEMPERATURE: %w", err)
		}
		s.LLM.Temperature = t
	}
	if v, ok := lookup("PRODLENS_AI_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PRODLENS_AI_TIMEOUT: %w", err)
		}
		s.LLM.Timeout = d
	}
	return nil
}

// Validate checks the settings for internal consistency.
func (s Settings) Validate() error {
	var errs []error
	if sum := s.Weights.Sum(); math.Abs(sum-1) > 0.001 {
		errs = append(errs, fmt.Errorf("scoring weights sum to %.3f, want 1", sum))
	}
	if s.LLM.Temperature < 0 || s.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("temperature %.2f out of range [0, 2]", s.LLM.Temperature))
	}
	if s.LLM.Timeout <= 0 {
		errs = append(errs, errors.New("llm timeout must be positive"))
	}
	if s.Limits.MaxAnalysisTime <= 0 {
		errs = append(errs, errors.New("max analysis time must be positive"))
	}
	if s.Addr == "" {
		errs = append(errs, errors.New("listen address is empty"))
	}
	return errors.Join(errs...)
}

// LLMConfig returns the client configuration for the selected provider. The
// API key is empty when the provider has none configured, in which case
// llm.New reports llm.ErrNoAPIKey.
func (s Settings) LLMConfig() llm.Config {
	cfg := llm.Config{
		Provider: s.LLM.Provider,
		BaseURL:  s.LLM.BaseURL,
		Timeout:  s.LLM.Timeout,
	}
	switch s.LLM.Provider {
	case llm.ProviderClaude:
		cfg.APIKey = s.LLM.AnthropicKey
		cfg.Model = s.LLM.ClaudeModel
	default:
		cfg.APIKey = s.LLM.OpenAIKey
		cfg.Model = s.LLM.OpenAIModel
	}
	return cfg
}

// LogValue reports the settings without credentials.
func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Any("allowed_origins", s.AllowedOrigins),
		slog.String("llm_provider", string(s.LLM.Provider)),
		slog.Bool("openai_key_set", s.LLM.OpenAIKey != ""),
		slog.Bool("anthropic_key_set", s.LLM.AnthropicKey != ""),
		slog.Float64("temperature", s.LLM.Temperature),
		slog.Duration("ai_timeout", s.LLM.Timeout),
		slog.Duration("max_analysis_time", s.Limits.MaxAnalysisTime),
		slog.Int("batch_size", s.Limits.BatchSize),
		slog.Int64("max_file_size", s.Limits.MaxFileSize),
	)
}
