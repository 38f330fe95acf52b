package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heridev/go-llm-server/internal/llm"
	"github.com/heridev/go-llm-server/internal/models"
)

const (
	defaultBaseURL    = "https://api.anthropic.com"
	defaultModelID    = "claude-sonnet-4-20250514"
	apiVersion        = "2023-06-01"
	requestTimeout    = 30 * time.Second
	defaultRetryAfter = 60
)

// Client implements llm.LLMClient against the Anthropic Messages API.
// Each call is independent and stateless; no retries are attempted.
type Client struct {
	apiKey  string
	modelID string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string, modelID string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if modelID == "" {
		modelID = defaultModelID
	}

	return &Client{
		apiKey:  apiKey,
		modelID: modelID,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}, nil
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
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

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	payload := messagesRequest{
		Model:       c.modelID,
		MaxTokens:   request.MaxTokens,
		Temperature: request.Temperature,
		TopP:        request.TopP,
		Messages: []message{
			{
				Role:    "user",
				Content: request.Prompt,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize messages request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("unable to build messages request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, models.NewAPIError(models.ErrCodeTimeout, "Request to the model API timed out")
		}
		return nil, models.NewAPIError(models.ErrCodeUnknown, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewAPIError(models.ErrCodeUnknown, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp, respBody)
	}

	// A malformed success body yields an empty-content response; the
	// formatter degrades it to the fallback record instead of failing the
	// request.
	var response messagesResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
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

// classifyStatus maps upstream HTTP failures to classified errors.
func classifyStatus(resp *http.Response, body []byte) *models.APIError {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		apiErr := models.NewAPIError(models.ErrCodeRateLimitExceeded, "Model API rate limit exceeded")
		apiErr.RetryAfter = retryAfterSeconds(resp.Header.Get("retry-after"))
		return apiErr
	case http.StatusBadRequest:
		return models.NewAPIError(models.ErrCodeInvalidRequest, upstreamMessage(body, "Invalid request to the model API"))
	case http.StatusUnauthorized:
		return models.NewAPIError(models.ErrCodeAuthentication, "Invalid API credentials")
	default:
		return models.NewAPIError(models.ErrCodeUnknown, upstreamMessage(body, fmt.Sprintf("Model API returned status %d", resp.StatusCode)))
	}
}

func retryAfterSeconds(header string) int {
	if header != "" {
		if seconds, err := strconv.Atoi(header); err == nil && seconds >= 0 {
			return seconds
		}
	}
	return defaultRetryAfter
}

func upstreamMessage(body []byte, fallback string) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return fallback
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
