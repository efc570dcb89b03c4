// Package score implements the rule-based production readiness scoring of
// app configurations.
//
// Each configuration is scored on 5 categories: scalability, security,
// testability, maintainability, and performance. A category starts from a
// fixed baseline and loses points for every heuristic that trips. The overall
// score is a weighted sum of the category scores, truncated toward zero.
package score

import (
	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/schema"
)

// Weights for each category in the overall score.
type Weights struct {
	Scalability     float64 `yaml:"scalability" json:"scalability"`
	Security        float64 `yaml:"security" json:"security"`
	Testability     float64 `yaml:"testability" json:"testability"`
	Maintainability float64 `yaml:"maintainability" json:"maintainability"`
	Performance     float64 `yaml:"performance" json:"performance"`
}

// DefaultWeights sum to 1.0.
var DefaultWeights = Weights{
	Scalability:     0.25,
	Security:        0.30,
	Testability:     0.20,
	Maintainability: 0.15,
	Performance:     0.10,
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Scalability + w.Security + w.Testability + w.Maintainability + w.Performance
}

// Categories runs all five scorers and returns their results keyed by
// category name.
func Categories(cfg appconfig.AppConfig) map[string]schema.CategoryScore {
	return map[string]schema.CategoryScore{
		schema.CategoryScalability:     scoreScalability(cfg),
		schema.CategorySecurity:        scoreSecurity(cfg),
		schema.CategoryTestability:     scoreTestability(cfg),
		schema.CategoryMaintainability: scoreMaintainability(cfg),
		schema.CategoryPerformance:     scorePerformance(cfg),
	}
}

// Overall computes the weighted overall score. Truncation, not rounding.
func Overall(cats map[string]schema.CategoryScore, w Weights) int {
	total := float64(cats[schema.CategoryScalability].Score)*w.Scalability +
		float64(cats[schema.CategorySecurity].Score)*w.Security +
		float64(cats[schema.CategoryTestability].Score)*w.Testability +
		float64(cats[schema.CategoryMaintainability].Score)*w.Maintainability +
		float64(cats[schema.CategoryPerformance].Score)*w.Performance

	return clamp(int(total))
}

// Level converts a 0-100 score to its label. The labels name the remaining
// risk, so a high score maps to "Low" and only >= 85 is "Excellent".
func Level(score int) schema.Level {
	switch {
	case score >= 85:
		return schema.LevelExcellent
	case score >= 70:
		return schema.LevelLow
	case score >= 50:
		return schema.LevelMedium
	case score >= 30:
		return schema.LevelHigh
	default:
		return schema.LevelCritical
	}
}

// maxSuggestions caps the suggestions reported per category.
const maxSuggestions = 2

// tally accumulates deductions for one category.
type tally struct {
	points      int
	issues      []string
	suggestions []string
}

func newTally(baseline int) *tally {
	return &tally{
		points:      baseline,
		issues:      []string{},
		suggestions: []string{},
	}
}

// deduct subtracts points and records the issue. An empty suggestion records
// none.
func (t *tally) deduct(points int, issue, suggestion string) {
	t.points -= points
	t.issues = append(t.issues, issue)
	if suggestion != "" {
		t.suggestions = append(t.suggestions, suggestion)
	}
}

func (t *tally) result() schema.CategoryScore {
	points := clamp(t.points)
	suggestions := t.suggestions
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return schema.CategoryScore{
		Score:       points,
		Level:       Level(points),
		Issues:      t.issues,
		Suggestions: suggestions,
	}
}

func clamp(points int) int {
	if points < 0 {
		return 0
	}
	if points > 100 {
		return 100
	}
	return points
}
