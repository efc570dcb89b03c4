// Package findings derives discrete risks and descriptive insights from an
// app configuration. Risks are presence/absence gates with no weighting;
// insights are informational and always produced.
package findings

import (
	"fmt"
	"strings"

	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/schema"
)

// performanceRiskUsers is the estimated user count above which load becomes
// a risk. It is lower than the scalability scorer's threshold.
const performanceRiskUsers = 5000

// Risks returns the risks tripped by cfg, always in the order cache,
// authentication, performance, testability.
func Risks(cfg appconfig.AppConfig) []schema.Risk {
	risks := []schema.Risk{}
	deps := appconfig.LowerText(cfg.Dependencies)

	if !strings.Contains(deps, "redis") {
		risks = append(risks, schema.Risk{
			Category:    "Scalability",
			Severity:    "High",
			Title:       "Missing Cache Layer",
			Description: "No caching mechanism found in dependencies",
			Impact:      "Performance degradation under load",
			Mitigation:  "Implement Redis or similar caching solution",
		})
	}

	if !strings.Contains(appconfig.LowerText(cfg.Text()), "auth") {
		risks = append(risks, schema.Risk{
			Category:    "Security",
			Severity:    "Critical",
			Title:       "No Authentication Detected",
			Description: "Application lacks authentication mechanism",
			Impact:      "Unauthorized access to sensitive data",
			Mitigation:  "Implement OAuth 2.0 or JWT authentication",
		})
	}

	if users, ok := cfg.EstimatedUsers(); ok && users > performanceRiskUsers {
		risks = append(risks, schema.Risk{
			Category:    "Performance",
			Severity:    "High",
			Title:       "Potential Performance Bottlenecks",
			Description: "Expected user count suggests high load",
			Impact:      "Potential slowdowns during peak usage",
			Mitigation:  "Implement performance optimization and load testing",
		})
	}

	if !appconfig.ContainsAny(deps, "jest", "pytest") {
		risks = append(risks, schema.Risk{
			Category:    "Testability",
			Severity:    "Medium",
			Title:       "No Testing Framework",
			Description: "Testing framework not found in dependencies",
			Impact:      "Difficulty ensuring code quality",
			Mitigation:  "Add Jest, Pytest, or similar testing framework",
		})
	}

	return risks
}

// Insights returns exactly three insights: application structure,
// dependency split and target scale.
func Insights(cfg appconfig.AppConfig) []schema.Insight {
	name := cfg.Name
	if name == "" {
		name = "Untitled"
	}

	users := "unknown"
	if v, ok := cfg.Metadata["estimatedUsers"]; ok {
		users = appconfig.Text(v)
	}

	return []schema.Insight{
		{
			Category:    "Architecture",
			Title:       "Application Structure",
			Description: fmt.Sprintf("App '%s' uses block-based architecture with %d components", name, cfg.Components()),
			Actionable:  true,
		},
		{
			Category: "Dependencies",
			Title:    "Dependency Analysis",
			Description: fmt.Sprintf("Application has %d dependencies. %d are production dependencies.",
				len(cfg.Dependencies), cfg.ProductionDependencies()),
			Actionable: false,
		},
		{
			Category:    "Scale",
			Title:       "Target Scale",
			Description: fmt.Sprintf("Estimated for %s users", users),
			Actionable:  true,
		},
	}
}
