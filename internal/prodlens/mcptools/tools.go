// Package mcptools exposes the readiness analysis as MCP tools so editors and
// agents can score an app configuration over stdio.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/internal/prodlens/report"
	"github.com/build-flow-labs/prodlens/schema"
)

// Analyzer produces reports. *report.Assembler implements it.
type Analyzer interface {
	Assemble(ctx context.Context, cfg appconfig.AppConfig, appName string) (*schema.AnalysisResult, error)
}

// New creates the MCP server with all prodlens tools registered.
func New(analyzer Analyzer, version string, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"prodlens",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	analyzeTool := NewAnalyzeTool(analyzer, logger)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	sampleTool := NewSampleTool(analyzer, logger)
	s.AddTool(sampleTool.Definition(), sampleTool.Handle)

	return s
}

// AnalyzeTool handles the analyze_app MCP tool.
type AnalyzeTool struct {
	analyzer Analyzer
	logger   *slog.Logger
}

// NewAnalyzeTool creates an AnalyzeTool.
func NewAnalyzeTool(analyzer Analyzer, logger *slog.Logger) *AnalyzeTool {
	return &AnalyzeTool{analyzer: analyzer, logger: logger}
}

// Definition returns the MCP tool definition for analyze_app.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze_app",
		mcp.WithDescription(
			"Score a low-code app configuration for production readiness. Returns category scores, "+
				"risks, insights, test suggestions, scale analysis and recommendations as JSON.",
		),
		mcp.WithString("app_config",
			mcp.Required(),
			mcp.Description("The app configuration document (name, description, blocks, dependencies, metadata)"),
		),
		mcp.WithString("app_name",
			mcp.Description("Name to report the app under (default: Untitled App)"),
		),
		mcp.WithString("format",
			mcp.Description("Format of app_config: json (default) or yaml"),
		),
	)
}

// Handle processes the analyze_app tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc := req.GetString("app_config", "")
	if doc == "" {
		return mcp.NewToolResultError("'app_config' is required"), nil
	}

	format := appconfig.Format(req.GetString("format", string(appconfig.FormatJSON)))
	if format != appconfig.FormatJSON && format != appconfig.FormatYAML {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q (use json or yaml)", format)), nil
	}

	cfg, err := appconfig.Parse([]byte(doc), format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid app_config: %v", err)), nil
	}

	return run(ctx, t.analyzer, t.logger, cfg, req.GetString("app_name", ""))
}

// SampleTool handles the sample_analysis MCP tool.
type SampleTool struct {
	analyzer Analyzer
	logger   *slog.Logger
}

// NewSampleTool creates a SampleTool.
func NewSampleTool(analyzer Analyzer, logger *slog.Logger) *SampleTool {
	return &SampleTool{analyzer: analyzer, logger: logger}
}

// Definition returns the MCP tool definition for sample_analysis.
func (t *SampleTool) Definition() mcp.Tool {
	return mcp.NewTool("sample_analysis",
		mcp.WithDescription("Run the readiness analysis on the built-in e-commerce dashboard sample."),
	)
}

// Handle processes the sample_analysis tool call.
func (t *SampleTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return run(ctx, t.analyzer, t.logger, appconfig.Sample(time.Now()), appconfig.SampleAppName)
}

func run(ctx context.Context, analyzer Analyzer, logger *slog.Logger, cfg appconfig.AppConfig, appName string) (*mcp.CallToolResult, error) {
	if appName == "" {
		appName = report.DefaultAppName
	}
	result, err := analyzer.Assemble(ctx, cfg, appName)
	if err != nil {
		logger.Error("mcp analysis failed", "app", appName, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	logger.Info("mcp analysis completed", "app", appName, "overall_score", result.OverallScore)
	return mcp.NewToolResultText(string(out)), nil
}
