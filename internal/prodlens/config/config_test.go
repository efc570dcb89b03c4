package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/build-flow-labs/prodlens/internal/prodlens/llm"
	"github.com/build-flow-labs/prodlens/internal/prodlens/score"
)

var envKeys = []string{
	"LLM_PROVIDER", "OPENAI_API_KEY", "OPENAI_MODEL", "ANTHROPIC_API_KEY",
	"CLAUDE_MODEL", "OPENAI_TEMPERATURE", "PRODLENS_ADDR",
	"PRODLENS_ALLOWED_ORIGINS", "PRODLENS_AI_TIMEOUT",
}

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Addr != ":8000" {
		t.Errorf("Addr = %q", s.Addr)
	}
	if s.LLM.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", s.LLM.Temperature)
	}
	if s.LLM.OpenAIModel != "gpt-3.5-turbo" {
		t.Errorf("OpenAIModel = %q", s.LLM.OpenAIModel)
	}
	if s.Weights != score.DefaultWeights {
		t.Errorf("Weights = %+v", s.Weights)
	}
	if len(s.AllowedOrigins) != 4 {
		t.Errorf("AllowedOrigins = %v", s.AllowedOrigins)
	}
	if s.Limits.BatchSize != 5 || s.Limits.MaxFileSize != 10*1024*1024 || s.Limits.MaxAnalysisTime != time.Minute {
		t.Errorf("Limits = %+v", s.Limits)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "prodlens.yaml")
	content := `addr: ":9000"
llm:
  provider: claude
  claude_model: claude-test
  timeout: 5s
weights:
  scalability: 0.2
  security: 0.35
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("PRODLENS_ADDR", ":7000")
	t.Setenv("PRODLENS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Addr != ":7000" {
		t.Errorf("Addr = %q, env should win over file", s.Addr)
	}
	if s.LLM.Provider != llm.ProviderClaude {
		t.Errorf("Provider = %q", s.LLM.Provider)
	}
	if s.LLM.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", s.LLM.Timeout)
	}
	if s.Weights.Security != 0.35 || s.Weights.Testability != 0.20 {
		t.Errorf("Weights = %+v, want file values merged over defaults", s.Weights)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(s.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v, want %v", s.AllowedOrigins, want)
	}

	cfg := s.LLMConfig()
	if cfg.APIKey != "sk-ant" || cfg.Model != "claude-test" {
		t.Errorf("LLMConfig = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr string
	}{
		{"missing file", "", nil, "reading settings"},
		{"bad yaml", "addr: [", nil, "parsing"},
		{"bad temperature", "", map[string]string{"OPENAI_TEMPERATURE": "warm"}, "OPENAI_TEMPERATURE"},
		{"temperature out of range", "", map[string]string{"OPENAI_TEMPERATURE": "3"}, "out of range"},
		{"bad timeout", "", map[string]string{"PRODLENS_AI_TIMEOUT": "soon"}, "PRODLENS_AI_TIMEOUT"},
		{"weights off", "weights:\n  security: 0.9\n", nil, "sum to"},
		{"negative timeout", "llm:\n  timeout: -1s\n", nil, "timeout must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			switch {
			case tt.name == "missing file":
				path = filepath.Join(t.TempDir(), "nope.yaml")
			case tt.file != "":
				path = filepath.Join(t.TempDir(), "prodlens.yaml")
				if err := os.WriteFile(path, []byte(tt.file), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLLMConfigDefaultsToOpenAI(t *testing.T) {
	s := Default()
	s.LLM.OpenAIKey = "sk-test"
	s.LLM.AnthropicKey = "unused"

	cfg := s.LLMConfig()
	if cfg.Provider != llm.ProviderOpenAI || cfg.APIKey != "sk-test" || cfg.Model != "gpt-3.5-turbo" {
		t.Errorf("LLMConfig = %+v", cfg)
	}

	s.LLM.OpenAIKey = ""
	if _, err := llm.New(s.LLMConfig()); err != llm.ErrNoAPIKey {
		t.Errorf("llm.New err = %v, want ErrNoAPIKey", err)
	}
}
