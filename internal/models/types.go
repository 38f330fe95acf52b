package models

import (
	"encoding/json"
)

const (
	MaxPromptLength    = 10000
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 800
	DefaultTopP        = 0.9
)

// Input message

type GenerateRequest struct {
	Prompt      string   `json:"prompt"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
}

// Normalized internal object, sampling defaults applied. Pointer fields on
// GenerateRequest distinguish "absent" from an explicit zero, so temperature 0
// is honored.
type CompletionRequest struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
	TopP        float64
}

func (r GenerateRequest) Normalize() CompletionRequest {
	req := CompletionRequest{
		Prompt:      r.Prompt,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		TopP:        DefaultTopP,
	}
	if r.Temperature != nil {
		req.Temperature = *r.Temperature
	}
	if r.MaxTokens != nil {
		req.MaxTokens = *r.MaxTokens
	}
	if r.TopP != nil {
		req.TopP = *r.TopP
	}
	return req
}

// MobileSummary is the fixed-shape record served to mobile clients.
// CodeSnippets is passed through unparsed when the model supplied it,
// never fabricated.
type MobileSummary struct {
	SummaryPoints   []string        `json:"summary_points"`
	DetailedFlow    string          `json:"detailed_flow"`
	CodeSnippets    json.RawMessage `json:"code_snippets,omitempty"`
	Confidence      float64         `json:"confidence"`
	MobileOptimized bool            `json:"mobile_optimized"`
}

// Final output emitted over HTTP
type GenerateResponse struct {
	Success   bool          `json:"success"`
	Data      MobileSummary `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// GenerateEvent is the stream-ingest variant of GenerateRequest.
type GenerateEvent struct {
	RequestID string `json:"request_id"`
	GenerateRequest
}

// GenerateEventResult is published to the result stream.
type GenerateEventResult struct {
	RequestID string         `json:"request_id"`
	Success   bool           `json:"success"`
	Data      *MobileSummary `json:"data,omitempty"`
	Error     string         `json:"error,omitempty"`
	Code      ErrorCode      `json:"code,omitempty"`
	Timestamp string         `json:"timestamp"`
}
