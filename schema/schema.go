// Package schema defines the production readiness report produced by prodlens
// and the response envelope it is served in.
package schema

// Version is the report schema version.
const Version = "1.0.0"

// Category names. Every report carries exactly these five keys.
const (
	CategoryScalability     = "scalability"
	CategorySecurity        = "security"
	CategoryTestability     = "testability"
	CategoryMaintainability = "maintainability"
	CategoryPerformance     = "performance"
)

// Categories lists the category names in scoring order.
var Categories = []string{
	CategoryScalability,
	CategorySecurity,
	CategoryTestability,
	CategoryMaintainability,
	CategoryPerformance,
}

// Level is the qualitative label derived from a category score.
type Level string

const (
	LevelCritical  Level = "Critical"
	LevelHigh      Level = "High"
	LevelMedium    Level = "Medium"
	LevelLow       Level = "Low"
	LevelExcellent Level = "Excellent"
)

// Readiness levels for a ScaleAnalysis.
const (
	ReadinessReady          = "Ready"
	ReadinessPartiallyReady = "Partially Ready"
	ReadinessNotReady       = "Not Ready"
)

// CategoryScore is the outcome of one category scorer.
type CategoryScore struct {
	Score       int      `json:"score" yaml:"score"`
	Level       Level    `json:"level" yaml:"level"`
	Issues      []string `json:"issues" yaml:"issues"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

// Risk is a discrete production risk.
type Risk struct {
	Category    string `json:"category" yaml:"category"`
	Severity    string `json:"severity" yaml:"severity"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Impact      string `json:"impact" yaml:"impact"`
	Mitigation  string `json:"mitigation" yaml:"mitigation"`
}

// Insight is an informational observation about the configuration.
type Insight struct {
	Category    string `json:"category" yaml:"category"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Actionable  bool   `json:"actionable" yaml:"actionable"`
}

// TestSuggestion proposes a kind of testing to invest in.
type TestSuggestion struct {
	Type              string `json:"type" yaml:"type"`
	Title             string `json:"title" yaml:"title"`
	Description       string `json:"description" yaml:"description"`
	Priority          string `json:"priority" yaml:"priority"`
	EstimatedDuration string `json:"estimatedDuration" yaml:"estimatedDuration"`
}

// ScaleAnalysis describes where the application breaks under load.
type ScaleAnalysis struct {
	Title           string   `json:"title" yaml:"title"`
	BreakingPoints  []string `json:"breakingPoints" yaml:"breakingPoints"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
	ReadinessLevel  string   `json:"readinessLevel" yaml:"readinessLevel"`
}

// Recommendation is a prioritized improvement action.
type Recommendation struct {
	Priority        string `json:"priority" yaml:"priority"`
	Category        string `json:"category" yaml:"category"`
	Action          string `json:"action" yaml:"action"`
	Rationale       string `json:"rationale" yaml:"rationale"`
	EstimatedEffort string `json:"estimatedEffort" yaml:"estimatedEffort"`
}

// AnalysisResult is the complete readiness report for one application.
type AnalysisResult struct {
	AppName         string                   `json:"appName" yaml:"appName"`
	Timestamp       string                   `json:"timestamp" yaml:"timestamp"`
	OverallScore    int                      `json:"overallScore" yaml:"overallScore"`
	Categories      map[string]CategoryScore `json:"categories" yaml:"categories"`
	Risks           []Risk                   `json:"risks" yaml:"risks"`
	Insights        []Insight                `json:"insights" yaml:"insights"`
	TestSuggestions []TestSuggestion         `json:"testSuggestions" yaml:"testSuggestions"`
	ScaleAnalysis   ScaleAnalysis            `json:"scaleAnalysis" yaml:"scaleAnalysis"`
	Recommendations []Recommendation         `json:"recommendations" yaml:"recommendations"`
}

// Response is the envelope every API answer is wrapped in. Failures are
// reported in-band with Success set to false.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
