package appconfig

import "time"

// SampleAppName is the app name the sample analysis is reported under.
const SampleAppName = "E-Commerce Dashboard (Sample)"

// Sample returns the built-in demo configuration: a React dashboard with five
// components, six dependencies and 5000 expected users.
func Sample(now time.Time) AppConfig {
	return AppConfig{
		Name:        "E-Commerce Dashboard",
		Description: "AI-generated e-commerce dashboard application",
		Blocks: map[string]any{
			"layout": map[string]any{"type": "grid", "columns": 12},
			"components": []any{
				map[string]any{"id": "header", "type": "header"},
				map[string]any{"id": "sidebar", "type": "sidebar"},
				map[string]any{"id": "main", "type": "container"},
				map[string]any{"id": "dashboard", "type": "dashboard"},
				map[string]any{"id": "reports", "type": "reports"},
			},
		},
		Dependencies: map[string]string{
			"react":       "^18.2.0",
			"react-query": "^3.39.0",
			"lodash":      "^4.17.21",
			"moment":      "^2.29.4",
			"axios":       "^1.4.0",
			"jest":        "^29.0.0",
		},
		Metadata: map[string]any{
			"createdAt":      now.Format(time.RFC3339),
			"version":        "1.0.0",
			"author":         "AI",
			"tags":           []any{"dashboard", "ecommerce"},
			"complexity":     "medium",
			"estimatedUsers": 5000,
		},
	}
}
