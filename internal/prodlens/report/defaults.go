package report

import "github.com/build-flow-labs/prodlens/schema"

// DefaultTestSuggestions returns the test plan used when no model reply is
// available.
func DefaultTestSuggestions() []schema.TestSuggestion {
	return []schema.TestSuggestion{
		{
			Type:              "API",
			Title:             "API Integration Tests",
			Description:       "Test all external API calls and integrations",
			Priority:          "High",
			EstimatedDuration: "2-3 days",
		},
		{
			Type:              "UI",
			Title:             "User Interface Testing",
			Description:       "Comprehensive UI testing across components",
			Priority:          "High",
			EstimatedDuration: "3-4 days",
		},
		{
			Type:              "Load",
			Title:             "Load Testing",
			Description:       "Performance testing under expected peak load",
			Priority:          "High",
			EstimatedDuration: "2 days",
		},
		{
			Type:              "Security",
			Title:             "Security Assessment",
			Description:       "Security scanning for vulnerabilities",
			Priority:          "Critical",
			EstimatedDuration: "3-5 days",
		},
		{
			Type:              "Automation",
			Title:             "Test Automation",
			Description:       "Set up CI/CD with automated testing",
			Priority:          "Medium",
			EstimatedDuration: "4-5 days",
		},
	}
}

// DefaultScaleAnalysis returns the static scale analysis every report
// carries.
func DefaultScaleAnalysis() schema.ScaleAnalysis {
	return schema.ScaleAnalysis{
		Title: "Production Scale Analysis",
		BreakingPoints: []string{
			"Database query performance may degrade with >100k records",
			"Cache layer needed for API calls exceeding 1000/min",
			"Load balancing required for >50 concurrent users",
			"Authentication throughput bottleneck at >500 requests/min",
		},
		Recommendations: []string{
			"Implement database query optimization and indexing strategy",
			"Add caching layer (Redis) for frequently accessed data",
			"Use CDN for static assets",
			"Implement auto-scaling policies",
			"Set up monitoring and alerting",
		},
		ReadinessLevel: schema.ReadinessPartiallyReady,
	}
}

// DefaultRecommendations returns the recommendations used when no model
// reply is available.
func DefaultRecommendations() []schema.Recommendation {
	return []schema.Recommendation{
		{
			Priority:        "High",
			Category:        "Security",
			Action:          "Implement Authentication",
			Rationale:       "Critical security requirement",
			EstimatedEffort: "3-5 days",
		},
		{
			Priority:        "High",
			Category:        "Performance",
			Action:          "Add Caching Layer",
			Rationale:       "Improves response times under load",
			EstimatedEffort: "2-3 days",
		},
		{
			Priority:        "Medium",
			Category:        "Testing",
			Action:          "Setup Test Framework",
			Rationale:       "Ensures code quality",
			EstimatedEffort: "2 days",
		},
		{
			Priority:        "Medium",
			Category:        "Architecture",
			Action:          "Refactor to Microservices",
			Rationale:       "Better scalability and maintainability",
			EstimatedEffort: "2-3 weeks",
		},
	}
}
