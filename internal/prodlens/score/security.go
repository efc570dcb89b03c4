package score

import (
	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/schema"
)

// secretKeywords hint at credentials committed into the configuration.
var secretKeywords = []string{"secret", "api_key", "password"}

// scoreSecurity grades authentication and secret handling.
//
// Scoring (baseline 70):
//   - "auth" appears nowhere in the configuration: -25
//   - secret, api_key or password appears anywhere: -15
//   - a dependency map is given but lists nothing: -5
func scoreSecurity(cfg appconfig.AppConfig) schema.CategoryScore {
	t := newTally(70)
	text := appconfig.LowerText(cfg.Text())

	if !appconfig.ContainsAny(text, "auth") {
		t.deduct(25,
			"No authentication mechanism detected",
			"Implement OAuth 2.0 or JWT-based authentication")
	}

	if appconfig.ContainsAny(text, secretKeywords...) {
		t.deduct(15,
			"Potential secrets in configuration",
			"Use environment variables for sensitive data")
	}

	if cfg.Dependencies != nil && len(cfg.Dependencies) == 0 {
		t.deduct(5, "No dependencies listed", "")
	}

	return t.result()
}
