package llm

type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// LLMResponse carries the first content block of the model reply plus
// usage/stop-reason metadata for logging.
type LLMResponse struct {
	Content      string
	StopReason   string
	InputTokens  int
	OutputTokens int
}
