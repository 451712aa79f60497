package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Varun6712/smart-calories/models"
)

// codeFence matches an opening fence with any language tag at line start,
// and elsewhere only a bare or json-tagged triple backtick.
var codeFence = regexp.MustCompile("(?m)^[ \t]*```[A-Za-z0-9_+-]*|```(?:json)?")

// StripCodeFences removes every Markdown fence marker and trims the result.
func StripCodeFences(raw string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(raw, ""))
}

// NormalizeEstimation parses the reasoning service's text into an
// EstimationResult. Anything that is not a single JSON object after fence
// stripping is ErrMalformedEstimation; values are passed through unchecked.
func NormalizeEstimation(raw string) (*models.EstimationResult, error) {
	body := StripCodeFences(raw)

	if !strings.HasPrefix(body, "{") {
		return nil, fmt.Errorf("%w: expected a JSON object, got %q", ErrMalformedEstimation, preview(body))
	}

	dec := json.NewDecoder(strings.NewReader(body))
	var out models.EstimationResult
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEstimation, err)
	}
	if rest := strings.TrimSpace(body[dec.InputOffset():]); rest != "" {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrMalformedEstimation)
	}
	return &out, nil
}

func preview(s string) string {
	const limit = 40
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
