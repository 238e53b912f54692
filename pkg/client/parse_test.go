package client

import "testing"

func TestSanitizeModelJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"plain json",
			`{"category": "dress"}`,
			`{"category": "dress"}`,
		},
		{
			"code fence",
			"```json\n{\"category\": \"coat\"}\n```",
			`{"category": "coat"}`,
		},
		{
			"trailing comma",
			`{"category": "skirt",}`,
			`{"category": "skirt"}`,
		},
		{
			"surrounding prose",
			`Sure! Here is the result: {"category": "top"} Hope that helps.`,
			`{"category": "top"}`,
		},
		{
			"block comment",
			"{/* model note */\"category\": \"gown\"}",
			`{"category": "gown"}`,
		},
	}

	for _, tc := range cases {
		if got := SanitizeModelJSON(tc.input); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseLabelResult(t *testing.T) {
	result, err := ParseLabelResult(`{"category": "dress", "attributes": ["pleated"], "colors": ["red"], "confidence": 0.92}`)
	if err != nil {
		t.Fatalf("ParseLabelResult failed: %v", err)
	}
	if result.Category != "dress" {
		t.Errorf("Expected category dress, got %s", result.Category)
	}
	if len(result.Attributes) != 1 || result.Attributes[0] != "pleated" {
		t.Errorf("Unexpected attributes: %v", result.Attributes)
	}
	if result.Confidence != 0.92 {
		t.Errorf("Expected confidence 0.92, got %g", result.Confidence)
	}
}

func TestParseLabelResultNonJSONFallback(t *testing.T) {
	result, err := ParseLabelResult("I think this is a lovely dress.")
	if err != nil {
		t.Fatalf("ParseLabelResult failed: %v", err)
	}
	if result.Category != "unknown" {
		t.Errorf("Expected fallback category unknown, got %s", result.Category)
	}
	if result.Confidence >= 0.5 {
		t.Errorf("Fallback confidence should be low, got %g", result.Confidence)
	}
}

func TestParseLabelResultEmbeddedJSON(t *testing.T) {
	result, err := ParseLabelResult("The answer is:\n```\n{\"category\": \"blazer\", \"confidence\": 0.8}\n```\n")
	if err != nil {
		t.Fatalf("ParseLabelResult failed: %v", err)
	}
	if result.Category != "blazer" {
		t.Errorf("Expected category blazer, got %s", result.Category)
	}
}

func TestParseLabelResultEmptyCategory(t *testing.T) {
	result, err := ParseLabelResult(`{"confidence": 0.7}`)
	if err != nil {
		t.Fatalf("ParseLabelResult failed: %v", err)
	}
	if result.Category != "unknown" {
		t.Errorf("Expected unknown for a missing category, got %s", result.Category)
	}
}
