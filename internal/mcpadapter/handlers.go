package mcpadapter

import (
	"context"
	"time"

	"github.com/heridev/go-llm-server/internal/executor"
	"github.com/heridev/go-llm-server/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GenerateInput is the MCP tool input schema (matches HTTP API field names).
type GenerateInput struct {
	Prompt      string   `json:"prompt" jsonschema:"text prompt to answer and reshape for mobile display"`
	Temperature *float64 `json:"temperature,omitempty" jsonschema:"sampling temperature (default 0.3)"`
	MaxTokens   *int     `json:"max_tokens,omitempty" jsonschema:"maximum completion tokens (default 800)"`
	TopP        *float64 `json:"top_p,omitempty" jsonschema:"nucleus sampling parameter (default 0.9)"`
}

// NewGenerateHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewGenerateHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, GenerateInput) (*mcp.CallToolResult, models.GenerateResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, models.GenerateResponse, error) {
		return GenerateSummary(ctx, exec, req, input)
	}
}

// GenerateSummary runs the generation pipeline and returns the mobile summary.
func GenerateSummary(
	ctx context.Context,
	exec *executor.Executor,
	req *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, models.GenerateResponse, error) {
	genRequest := models.GenerateRequest{
		Prompt:      input.Prompt,
		Temperature: input.Temperature,
		MaxTokens:   input.MaxTokens,
		TopP:        input.TopP,
	}

	summary, err := exec.Execute(ctx, genRequest.Normalize())
	if err != nil {
		return nil, models.GenerateResponse{}, err
	}

	return nil, models.GenerateResponse{
		Success:   true,
		Data:      *summary,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
