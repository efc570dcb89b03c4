package schema

import (
	"errors"
	"fmt"
)

// ErrInvalidEntry is returned when a model-supplied entry does not have the
// shape of the report type it is meant to fill.
var ErrInvalidEntry = errors.New("invalid entry")

// TestSuggestionFromMap validates an untyped entry as a TestSuggestion. Every
// field must be present and hold a string; extra fields are ignored.
func TestSuggestionFromMap(v any) (TestSuggestion, error) {
	m, err := entryMap(v, "test suggestion")
	if err != nil {
		return TestSuggestion{}, err
	}
	f := fieldReader{entry: "test suggestion", m: m}
	s := TestSuggestion{
		Type:              f.str("type"),
		Title:             f.str("title"),
		Description:       f.str("description"),
		Priority:          f.str("priority"),
		EstimatedDuration: f.str("estimatedDuration"),
	}
	return s, f.err
}

// RecommendationFromMap validates an untyped entry as a Recommendation.
func RecommendationFromMap(v any) (Recommendation, error) {
	m, err := entryMap(v, "recommendation")
	if err != nil {
		return Recommendation{}, err
	}
	f := fieldReader{entry: "recommendation", m: m}
	r := Recommendation{
		Priority:        f.str("priority"),
		Category:        f.str("category"),
		Action:          f.str("action"),
		Rationale:       f.str("rationale"),
		EstimatedEffort: f.str("estimatedEffort"),
	}
	return r, f.err
}

// RiskFromMap validates an untyped entry as a Risk.
func RiskFromMap(v any) (Risk, error) {
	m, err := entryMap(v, "risk")
	if err != nil {
		return Risk{}, err
	}
	f := fieldReader{entry: "risk", m: m}
	r := Risk{
		Category:    f.str("category"),
		Severity:    f.str("severity"),
		Title:       f.str("title"),
		Description: f.str("description"),
		Impact:      f.str("impact"),
		Mitigation:  f.str("mitigation"),
	}
	return r, f.err
}

func entryMap(v any, entry string) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object, got %T", ErrInvalidEntry, entry, v)
	}
	return m, nil
}

// fieldReader collects the first validation failure while reading fields.
type fieldReader struct {
	entry string
	m     map[string]any
	err   error
}

func (f *fieldReader) str(key string) string {
	if f.err != nil {
		return ""
	}
	v, ok := f.m[key]
	if !ok {
		f.err = fmt.Errorf("%w: %s is missing field %q", ErrInvalidEntry, f.entry, key)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.err = fmt.Errorf("%w: %s field %q must be a string, got %T", ErrInvalidEntry, f.entry, key, v)
		return ""
	}
	return s
}
