package formatter

import (
	"encoding/json"
	"strings"

	"github.com/heridev/go-llm-server/internal/models"
)

const (
	maxSummaryPoints    = 5
	flowLineMinLength   = 20
	pointExcerptLength  = 50
	flowExcerptLength   = 200
	defaultConfidence   = 0.8
	fallbackConfidence  = 0.5
	defaultSummaryPoint = "Response received"
)

var bulletMarkers = []string{"•", "-", "*"}

// candidate holds content extracted from the model reply before defaults are
// applied. It doubles as the expected JSON shape for structured replies.
type candidate struct {
	SummaryPoints []string        `json:"summary_points"`
	DetailedFlow  string          `json:"detailed_flow"`
	CodeSnippets  json.RawMessage `json:"code_snippets"`
	Confidence    *float64        `json:"confidence"`
}

// Format converts a raw model reply into a MobileSummary. It never fails:
// structured JSON is used verbatim, free-form text goes through the bullet
// heuristic, and an empty reply degrades to a fixed fallback record.
func Format(content string) models.MobileSummary {
	text := stripMarkdownCodeBlock(content)
	if strings.TrimSpace(text) == "" {
		return fallbackSummary()
	}

	cand, ok := tryParseStructured(text)
	if !ok {
		cand = heuristicParse(text)
	}

	return mergeWithDefaults(cand, text)
}

// tryParseStructured attempts to read the text as a JSON object matching the
// candidate shape. Only objects qualify: the literal null also unmarshals
// cleanly but carries no fields, so it falls through to the heuristic.
func tryParseStructured(text string) (candidate, bool) {
	if !strings.HasPrefix(strings.TrimSpace(text), "{") {
		return candidate{}, false
	}

	var cand candidate
	if err := json.Unmarshal([]byte(text), &cand); err != nil {
		return candidate{}, false
	}
	if len(cand.CodeSnippets) > 0 && string(cand.CodeSnippets) == "null" {
		cand.CodeSnippets = nil
	}
	return cand, true
}

// heuristicParse extracts bullet lines as summary points and the first
// non-bullet line longer than flowLineMinLength as the detailed flow.
func heuristicParse(text string) candidate {
	var points []string
	var flow string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if marker, ok := bulletPrefix(line); ok {
			if len(points) < maxSummaryPoints {
				points = append(points, strings.TrimSpace(strings.TrimPrefix(line, marker)))
			}
			continue
		}

		if flow == "" && len(line) > flowLineMinLength {
			flow = clip(line, flowExcerptLength)
		}
	}

	if len(points) == 0 {
		points = []string{clip(text, pointExcerptLength)}
	}
	if flow == "" {
		flow = clip(text, flowExcerptLength)
	}

	conf := defaultConfidence
	return candidate{SummaryPoints: points, DetailedFlow: flow, Confidence: &conf}
}

// mergeWithDefaults fills in missing candidate fields and enforces the output
// bounds.
func mergeWithDefaults(cand candidate, text string) models.MobileSummary {
	points := cand.SummaryPoints
	if len(points) == 0 {
		points = []string{defaultSummaryPoint}
	}
	if len(points) > maxSummaryPoints {
		points = points[:maxSummaryPoints]
	}

	flow := cand.DetailedFlow
	if flow == "" {
		flow = clip(text, flowExcerptLength)
	}

	confidence := defaultConfidence
	if cand.Confidence != nil {
		confidence = *cand.Confidence
	}
	confidence = min(max(confidence, 0), 1)

	return models.MobileSummary{
		SummaryPoints:   points,
		DetailedFlow:    flow,
		CodeSnippets:    cand.CodeSnippets,
		Confidence:      confidence,
		MobileOptimized: true,
	}
}

func fallbackSummary() models.MobileSummary {
	return models.MobileSummary{
		SummaryPoints:   []string{"Error processing response"},
		DetailedFlow:    "Unable to format response properly",
		Confidence:      fallbackConfidence,
		MobileOptimized: true,
	}
}

func bulletPrefix(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return marker, true
		}
	}
	return "", false
}

// clip keeps the first n characters of s, appending an ellipsis marker when
// anything was cut off.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// stripMarkdownCodeBlock removes markdown code fence formatting if present,
// since models often wrap JSON replies in ```json fences.
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, "```") {
		return content
	}

	firstNewline := strings.Index(content, "\n")
	if firstNewline == -1 {
		return content
	}

	closingBackticks := strings.LastIndex(content, "```")
	if closingBackticks == -1 || closingBackticks <= firstNewline {
		return content
	}

	return strings.TrimSpace(content[firstNewline+1 : closingBackticks])
}
