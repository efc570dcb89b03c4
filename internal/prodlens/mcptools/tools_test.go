package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/internal/prodlens/report"
	"github.com/build-flow-labs/prodlens/internal/prodlens/score"
	"github.com/build-flow-labs/prodlens/schema"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAssembler() *report.Assembler {
	return report.NewAssembler(score.DefaultWeights, nil, testLogger())
}

func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestAnalyzeTool_Definition(t *testing.T) {
	def := NewAnalyzeTool(newAssembler(), testLogger()).Definition()
	if def.Name != "analyze_app" {
		t.Errorf("tool name = %q, want analyze_app", def.Name)
	}
	for _, p := range []string{"app_config", "app_name", "format"} {
		if _, ok := def.InputSchema.Properties[p]; !ok {
			t.Errorf("missing %q parameter", p)
		}
	}
	if len(def.InputSchema.Required) != 1 || def.InputSchema.Required[0] != "app_config" {
		t.Errorf("Required = %v, want [app_config]", def.InputSchema.Required)
	}
}

func TestAnalyzeTool_Handle(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		wantErr  bool
		wantText string
	}{
		{
			name:     "json config",
			args:     map[string]interface{}{"app_config": `{"name": "Shop", "dependencies": {"jest": "29"}}`, "app_name": "Shop"},
			wantText: `"appName": "Shop"`,
		},
		{
			name:     "yaml config defaults name",
			args:     map[string]interface{}{"app_config": "name: Shop\n", "format": "yaml"},
			wantText: `"appName": "Untitled App"`,
		},
		{"missing config", map[string]interface{}{}, true, "required"},
		{"bad format", map[string]interface{}{"app_config": "{}", "format": "toml"}, true, "unsupported format"},
		{"not an object", map[string]interface{}{"app_config": "[1]"}, true, "invalid app_config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewAnalyzeTool(newAssembler(), testLogger())
			res, err := tool.Handle(context.Background(), makeReq(tt.args))
			if err != nil {
				t.Fatalf("Handle returned error: %v", err)
			}
			if res.IsError != tt.wantErr {
				t.Errorf("IsError = %v, want %v: %s", res.IsError, tt.wantErr, resultText(res))
			}
			if !strings.Contains(resultText(res), tt.wantText) {
				t.Errorf("result %q does not contain %q", resultText(res), tt.wantText)
			}
		})
	}
}

type failingAnalyzer struct{}

func (failingAnalyzer) Assemble(context.Context, appconfig.AppConfig, string) (*schema.AnalysisResult, error) {
	return nil, errors.New("decoding recommendations: invalid entry")
}

func TestAnalyzeTool_AnalysisFailure(t *testing.T) {
	tool := NewAnalyzeTool(failingAnalyzer{}, testLogger())
	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"app_config": "{}"}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError || !strings.Contains(resultText(res), "analysis failed") {
		t.Errorf("unexpected result: %s", resultText(res))
	}
}

func TestSampleTool_Handle(t *testing.T) {
	tool := NewSampleTool(newAssembler(), testLogger())
	if tool.Definition().Name != "sample_analysis" {
		t.Errorf("tool name = %q", tool.Definition().Name)
	}

	res, err := tool.Handle(context.Background(), makeReq(nil))
	if err != nil {
		t.Fatal(err)
	}
	var result schema.AnalysisResult
	if err := json.Unmarshal([]byte(resultText(res)), &result); err != nil {
		t.Fatalf("result is not a report: %v", err)
	}
	if result.AppName != appconfig.SampleAppName {
		t.Errorf("AppName = %q", result.AppName)
	}
	if len(result.Categories) != 5 {
		t.Errorf("got %d categories", len(result.Categories))
	}
}

func TestNewRegistersTools(t *testing.T) {
	s := New(newAssembler(), "test", testLogger())
	resp := s.HandleMessage(context.Background(), []byte(`{"jsonrpc": "2.0", "id": 1, "method": "tools/list"}`))
	out, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"analyze_app", "sample_analysis"} {
		if !strings.Contains(string(out), `"`+name+`"`) {
			t.Errorf("tool %q not listed: %s", name, out)
		}
	}
}
