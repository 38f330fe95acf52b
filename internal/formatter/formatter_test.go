package formatter

import (
	"strings"
	"testing"
)

func TestFormat_StructuredJSON(t *testing.T) {
	content := `{"summary_points": ["First point", "Second point"], "detailed_flow": "A short explanation.", "confidence": 0.95}`

	summary := Format(content)

	if len(summary.SummaryPoints) != 2 {
		t.Fatalf("Expected 2 summary points, got %d", len(summary.SummaryPoints))
	}
	if summary.SummaryPoints[0] != "First point" || summary.SummaryPoints[1] != "Second point" {
		t.Errorf("Summary points not preserved: %v", summary.SummaryPoints)
	}
	if summary.DetailedFlow != "A short explanation." {
		t.Errorf("Expected detailed flow preserved, got '%s'", summary.DetailedFlow)
	}
	if summary.Confidence != 0.95 {
		t.Errorf("Expected confidence=0.95, got %f", summary.Confidence)
	}
	if !summary.MobileOptimized {
		t.Error("Expected mobile_optimized=true")
	}
	if summary.CodeSnippets != nil {
		t.Errorf("Expected no code snippets, got %s", summary.CodeSnippets)
	}
}

func TestFormat_StructuredJSON_CodeSnippetsPassThrough(t *testing.T) {
	content := `{"summary_points": ["P"], "detailed_flow": "Flow", "code_snippets": ["fmt.Println(1)"], "confidence": 0.9}`

	summary := Format(content)

	if string(summary.CodeSnippets) != `["fmt.Println(1)"]` {
		t.Errorf("Expected code snippets passed through unparsed, got %s", summary.CodeSnippets)
	}
}

func TestFormat_StructuredJSON_NullCodeSnippetsOmitted(t *testing.T) {
	content := `{"summary_points": ["P"], "detailed_flow": "Flow", "code_snippets": null}`

	summary := Format(content)

	if summary.CodeSnippets != nil {
		t.Errorf("Expected null code snippets dropped, got %s", summary.CodeSnippets)
	}
}

func TestFormat_StructuredJSON_MissingFieldsDefaulted(t *testing.T) {
	content := `{"detailed_flow": "Only a flow here."}`

	summary := Format(content)

	if len(summary.SummaryPoints) != 1 || summary.SummaryPoints[0] != "Response received" {
		t.Errorf("Expected default summary point, got %v", summary.SummaryPoints)
	}
	if summary.Confidence != 0.8 {
		t.Errorf("Expected default confidence=0.8, got %f", summary.Confidence)
	}
}

func TestFormat_JSONNullLiteralUsesHeuristic(t *testing.T) {
	summary := Format("null")

	if len(summary.SummaryPoints) != 1 || summary.SummaryPoints[0] != "null" {
		t.Errorf("Expected literal text excerpt as the summary point, got %v", summary.SummaryPoints)
	}
	if summary.DetailedFlow != "null" {
		t.Errorf("Expected literal text as the detailed flow, got '%s'", summary.DetailedFlow)
	}
	if summary.Confidence != 0.8 {
		t.Errorf("Expected heuristic confidence=0.8, got %f", summary.Confidence)
	}
}

func TestFormat_StructuredJSON_ConfidenceClamped(t *testing.T) {
	summary := Format(`{"summary_points": ["A"], "detailed_flow": "Flow", "confidence": 3.5}`)
	if summary.Confidence != 1 {
		t.Errorf("Expected confidence clamped to 1, got %f", summary.Confidence)
	}

	summary = Format(`{"summary_points": ["A"], "detailed_flow": "Flow", "confidence": -0.2}`)
	if summary.Confidence != 0 {
		t.Errorf("Expected confidence clamped to 0, got %f", summary.Confidence)
	}
}

func TestFormat_StructuredJSON_MarkdownFences(t *testing.T) {
	content := "```json\n{\"summary_points\": [\"Fenced\"], \"detailed_flow\": \"Fenced flow\"}\n```"

	summary := Format(content)

	if len(summary.SummaryPoints) != 1 || summary.SummaryPoints[0] != "Fenced" {
		t.Errorf("Expected fences stripped before parsing, got %v", summary.SummaryPoints)
	}
	if summary.DetailedFlow != "Fenced flow" {
		t.Errorf("Expected detailed flow 'Fenced flow', got '%s'", summary.DetailedFlow)
	}
}

func TestFormat_BulletHeuristic(t *testing.T) {
	content := "• A\n• B\nSome long explanatory line here that exceeds twenty chars\n• C"

	summary := Format(content)

	expected := []string{"A", "B", "C"}
	if len(summary.SummaryPoints) != len(expected) {
		t.Fatalf("Expected %d points, got %v", len(expected), summary.SummaryPoints)
	}
	for i, want := range expected {
		if summary.SummaryPoints[i] != want {
			t.Errorf("Point %d: expected '%s', got '%s'", i, want, summary.SummaryPoints[i])
		}
	}
	if summary.DetailedFlow != "Some long explanatory line here that exceeds twenty chars" {
		t.Errorf("Expected explanatory line as detailed flow, got '%s'", summary.DetailedFlow)
	}
	if summary.Confidence != 0.8 {
		t.Errorf("Expected heuristic confidence=0.8, got %f", summary.Confidence)
	}
}

func TestFormat_BulletHeuristic_AllMarkers(t *testing.T) {
	content := "• dot point\n- dash point\n* star point"

	summary := Format(content)

	expected := []string{"dot point", "dash point", "star point"}
	if len(summary.SummaryPoints) != len(expected) {
		t.Fatalf("Expected %d points, got %v", len(expected), summary.SummaryPoints)
	}
	for i, want := range expected {
		if summary.SummaryPoints[i] != want {
			t.Errorf("Point %d: expected '%s', got '%s'", i, want, summary.SummaryPoints[i])
		}
	}
}

func TestFormat_BulletHeuristic_CapsAtFivePoints(t *testing.T) {
	content := "- one\n- two\n- three\n- four\n- five\n- six\n- seven"

	summary := Format(content)

	if len(summary.SummaryPoints) != 5 {
		t.Fatalf("Expected 5 points, got %d", len(summary.SummaryPoints))
	}
	if summary.SummaryPoints[4] != "five" {
		t.Errorf("Expected points kept in source order, got %v", summary.SummaryPoints)
	}
}

func TestFormat_Truncation(t *testing.T) {
	content := strings.Repeat("x", 300)

	summary := Format(content)

	wantFlow := strings.Repeat("x", 200) + "..."
	if summary.DetailedFlow != wantFlow {
		t.Errorf("Expected first 200 chars plus ellipsis, got %d chars", len(summary.DetailedFlow))
	}

	wantPoint := strings.Repeat("x", 50) + "..."
	if len(summary.SummaryPoints) != 1 || summary.SummaryPoints[0] != wantPoint {
		t.Errorf("Expected single point of first 50 chars plus ellipsis, got %v", summary.SummaryPoints)
	}
}

func TestFormat_ShortTextKeptWhole(t *testing.T) {
	content := "A plain reply without any bullet structure."

	summary := Format(content)

	if len(summary.SummaryPoints) != 1 || summary.SummaryPoints[0] != content {
		t.Errorf("Expected whole text as single point, got %v", summary.SummaryPoints)
	}
	if summary.DetailedFlow != content {
		t.Errorf("Expected whole text as detailed flow, got '%s'", summary.DetailedFlow)
	}
}

func TestFormat_EmptyContentFallback(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\n"} {
		summary := Format(content)

		if len(summary.SummaryPoints) != 1 || summary.SummaryPoints[0] != "Error processing response" {
			t.Errorf("Content %q: expected fallback point, got %v", content, summary.SummaryPoints)
		}
		if summary.DetailedFlow != "Unable to format response properly" {
			t.Errorf("Content %q: expected fallback flow, got '%s'", content, summary.DetailedFlow)
		}
		if summary.Confidence != 0.5 {
			t.Errorf("Content %q: expected fallback confidence=0.5, got %f", content, summary.Confidence)
		}
		if !summary.MobileOptimized {
			t.Errorf("Content %q: expected mobile_optimized=true", content)
		}
		if summary.CodeSnippets != nil {
			t.Errorf("Content %q: expected no code snippets", content)
		}
	}
}

// Format must be total: any input yields a well-formed record.
func TestFormat_Total(t *testing.T) {
	inputs := []string{
		"{not valid json",
		"\x00\x01\x02\xff binary garbage",
		"[1, 2, 3]",
		`"just a json string"`,
		"{\"summary_points\": \"wrong type\"}",
		"```\nunclosed fence",
		"- ",
	}

	for _, content := range inputs {
		summary := Format(content)

		if len(summary.SummaryPoints) < 1 || len(summary.SummaryPoints) > 5 {
			t.Errorf("Input %q: summary points out of bounds: %v", content, summary.SummaryPoints)
		}
		if !summary.MobileOptimized {
			t.Errorf("Input %q: expected mobile_optimized=true", content)
		}
	}
}

func TestFormat_StructuredJSON_TooManyPointsCapped(t *testing.T) {
	content := `{"summary_points": ["1", "2", "3", "4", "5", "6", "7"], "detailed_flow": "Flow"}`

	summary := Format(content)

	if len(summary.SummaryPoints) != 5 {
		t.Errorf("Expected points capped at 5, got %d", len(summary.SummaryPoints))
	}
}
