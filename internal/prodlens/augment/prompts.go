package augment

import (
	"fmt"

	"github.com/build-flow-labs/prodlens/appconfig"
)

// SystemPrompt is sent with every augmentation request.
const SystemPrompt = "You are an expert DevOps and software architecture specialist. " +
	"Analyze the provided application configuration and provide structured insights in JSON format."

// summaryLimit caps how many characters of the configuration reach the model.
const summaryLimit = 1000

// Summary returns the indented JSON form of cfg cut to its first 1000
// characters.
func Summary(cfg appconfig.AppConfig) (string, error) {
	full, err := cfg.PrettyJSON()
	if err != nil {
		return "", err
	}
	runes := []rune(full)
	if len(runes) > summaryLimit {
		return string(runes[:summaryLimit]), nil
	}
	return full, nil
}

// BuildPrompt builds the user prompt for kind.
func BuildPrompt(cfg appconfig.AppConfig, kind Kind) (string, error) {
	summary, err := Summary(cfg)
	if err != nil {
		return "", fmt.Errorf("summarizing app config: %w", err)
	}

	switch kind {
	case KindRisks:
		return fmt.Sprintf(`
Analyze the following application configuration and identify production readiness risks:

Application Config:
%s

Provide a JSON response with the following structure:
{
  "risks": [
    {
      "category": "string",
      "severity": "Critical|High|Medium|Low",
      "title": "string",
      "description": "string",
      "impact": "string",
      "mitigation": "string"
    }
  ]
}

Focus on: security vulnerabilities, scalability issues, performance bottlenecks, and testing gaps.
Return ONLY valid JSON, no markdown or extra text.
`, summary), nil

	case KindRecommendations:
		return fmt.Sprintf(`
Analyze the following application configuration and provide improvement recommendations:

Application Config:
%s

Provide a JSON response with the following structure:
{
  "recommendations": [
    {
      "priority": "Critical|High|Medium|Low",
      "category": "string",
      "action": "string",
      "rationale": "string",
      "estimatedEffort": "string"
    }
  ]
}

Return ONLY valid JSON, no markdown or extra text.
`, summary), nil

	case KindTestStrategy:
		return fmt.Sprintf(`
Based on the application configuration, suggest testing strategies:

Application Config:
%s

Provide a JSON response with the following structure:
{
  "suggestions": [
    {
      "type": "API|UI|Automation|Load|Security",
      "title": "string",
      "description": "string",
      "priority": "High|Medium|Low",
      "estimatedDuration": "string"
    }
  ]
}

Return ONLY valid JSON, no markdown or extra text.
`, summary), nil

	default:
		return "", fmt.Errorf("unknown augmentation kind: %q", kind)
	}
}
