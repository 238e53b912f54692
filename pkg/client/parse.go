package client

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/trendlens/runway-color/pkg/types"
)

// ParseLabelResult parses the JSON response of a vision model. Responses that
// cannot be parsed yield a conservative low-confidence fallback instead of an
// error, so one chatty model answer never aborts a batch.
func ParseLabelResult(raw string) (*types.LabelResult, error) {
	raw = SanitizeModelJSON(raw)

	if !strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return fallbackResult("non-json"), nil
	}

	var result types.LabelResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// Try conservative brace-slice approach
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start < 0 || end <= start {
			return fallbackResult("no-json"), nil
		}
		if err2 := json.Unmarshal([]byte(raw[start:end+1]), &result); err2 != nil {
			return fallbackResult("parse-error"), nil
		}
	}

	if result.Category == "" {
		result.Category = "unknown"
	}
	return &result, nil
}

func fallbackResult(reason string) *types.LabelResult {
	return &types.LabelResult{
		Category:   "unknown",
		Confidence: 0.1,
		Attributes: []string{reason, "fallback"},
	}
}

var (
	reBlockComment  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reLineComment   = regexp.MustCompile(`(?m)^\s*//.*$`)
	reInlineComment = regexp.MustCompile(`(?m)//.*$`)
	reTrailingComma = regexp.MustCompile(`,(\s*[}\]])`)
)

// SanitizeModelJSON removes code fences, comments, and trailing commas from a
// model response and keeps only the outermost JSON object.
func SanitizeModelJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	// Strip triple-backtick fences if present
	if strings.HasPrefix(raw, "```") {
		if i := strings.Index(raw, "\n"); i >= 0 {
			raw = raw[i+1:]
		}
		if j := strings.LastIndex(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
	}
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, "`")

	raw = reBlockComment.ReplaceAllString(raw, "")
	raw = reLineComment.ReplaceAllString(raw, "")
	raw = reInlineComment.ReplaceAllString(raw, "")
	raw = reTrailingComma.ReplaceAllString(raw, "$1")

	// Keep only the outermost {...}
	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			raw = raw[start : end+1]
		}
	}
	return strings.TrimSpace(raw)
}
