package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/heridev/go-llm-server/internal/llm"
	"github.com/heridev/go-llm-server/internal/models"
)

type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	TopP             float64         `json:"top_p"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

var anthropicVersion = "bedrock-2023-05-31"

const (
	requestTimeout    = 30 * time.Second
	defaultRetryAfter = 60
)

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	payload := claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        request.MaxTokens,
		Temperature:      request.Temperature,
		TopP:             request.TopP,
		Messages: []claudeMessage{
			{
				Role:    "user",
				Content: request.Prompt,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize claude request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &c.ModelID,
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})

	if err != nil {
		return nil, classifyInvokeError(err)
	}

	// A malformed body degrades to the fallback record downstream.
	var response claudeMessageResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return &llm.LLMResponse{}, nil
	}

	// Extract the response
	var content string
	if len(response.Content) > 0 {
		content = response.Content[0].Text
	}

	return &llm.LLMResponse{
		Content:      content,
		StopReason:   response.StopReason,
		InputTokens:  response.Usage.InputTokens,
		OutputTokens: response.Usage.OutputTokens,
	}, nil
}

// classifyInvokeError maps Bedrock runtime failures onto the same error kinds
// the direct API client produces.
func classifyInvokeError(err error) *models.APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return models.NewAPIError(models.ErrCodeTimeout, "Request to the model API timed out")
	}

	errStr := err.Error()

	if strings.Contains(errStr, "ThrottlingException") ||
		strings.Contains(errStr, "TooManyRequestsException") ||
		strings.Contains(errStr, "Rate exceeded") {
		apiErr := models.NewAPIError(models.ErrCodeRateLimitExceeded, "Model API rate limit exceeded")
		apiErr.RetryAfter = defaultRetryAfter
		return apiErr
	}

	if strings.Contains(errStr, "ValidationException") {
		return models.NewAPIError(models.ErrCodeInvalidRequest, errStr)
	}

	if strings.Contains(errStr, "AccessDeniedException") ||
		strings.Contains(errStr, "UnrecognizedClientException") ||
		strings.Contains(errStr, "ExpiredTokenException") {
		return models.NewAPIError(models.ErrCodeAuthentication, "Invalid API credentials")
	}

	return models.NewAPIError(models.ErrCodeUnknown, errStr)
}
