package augment

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/build-flow-labs/prodlens/schema"
)

// jsonSpan matches from the first '{' to the last '}'.
var jsonSpan = regexp.MustCompile(`(?s)\{.*\}`)

// Parse extracts the JSON object embedded in a model reply. It returns an
// empty, non-nil map when no object can be located or decoded.
func Parse(raw string) map[string]any {
	span := jsonSpan.FindString(raw)
	if span == "" {
		return map[string]any{}
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(span), &parsed); err != nil || parsed == nil {
		return map[string]any{}
	}
	return parsed
}

// TestSuggestions decodes up to limit entries of the "suggestions" key. It
// returns nil without error when the key is absent. A single malformed entry
// fails the whole batch.
func TestSuggestions(parsed map[string]any, limit int) ([]schema.TestSuggestion, error) {
	return decodeEntries(parsed, "suggestions", limit, schema.TestSuggestionFromMap)
}

// Recommendations decodes up to limit entries of the "recommendations" key.
func Recommendations(parsed map[string]any, limit int) ([]schema.Recommendation, error) {
	return decodeEntries(parsed, "recommendations", limit, schema.RecommendationFromMap)
}

// Risks decodes up to limit entries of the "risks" key, the reply shape of
// KindRisks.
func Risks(parsed map[string]any, limit int) ([]schema.Risk, error) {
	return decodeEntries(parsed, "risks", limit, schema.RiskFromMap)
}

func decodeEntries[T any](parsed map[string]any, key string, limit int, decode func(any) (T, error)) ([]T, error) {
	v, ok := parsed[key]
	if !ok {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a list, got %T", schema.ErrInvalidEntry, key, v)
	}
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		entry, err := decode(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, entry)
	}
	return out, nil
}
