package executor

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/heridev/go-llm-server/internal/config"
	"github.com/heridev/go-llm-server/internal/formatter"
	"github.com/heridev/go-llm-server/internal/llm"
	"github.com/heridev/go-llm-server/internal/models"
	"github.com/heridev/go-llm-server/internal/prechecks"
	"github.com/rs/zerolog"
)

// Executor runs the generation pipeline: validate the prompt, invoke the
// model, format the reply for mobile clients.
type Executor struct {
	llmClient      llm.LLMClient
	promptTemplate *template.Template
	logger         *zerolog.Logger
}

func NewExecutor(llmClient llm.LLMClient, promptCfg *config.PromptConfig, logger *zerolog.Logger) (*Executor, error) {
	tmpl, err := template.New("prompt").Parse(promptCfg.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return &Executor{
		llmClient:      llmClient,
		promptTemplate: tmpl,
		logger:         logger,
	}, nil
}

// Execute always terminates in exactly one of a MobileSummary or a classified
// error; formatting itself never fails.
func (e *Executor) Execute(ctx context.Context, req models.CompletionRequest) (*models.MobileSummary, error) {
	if apiErr := prechecks.ValidatePrompt(req.Prompt); apiErr != nil {
		return nil, apiErr
	}

	prompt, err := e.buildPrompt(req)
	if err != nil {
		e.logger.Error().Err(err).Msg("failed to build prompt from template")
		return nil, models.NewAPIError(models.ErrCodeInternal, "Internal server error")
	}

	resp, err := e.llmClient.InvokeModel(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	})
	if err != nil {
		e.logger.Error().Err(err).Msg("LLM call failed")
		return nil, err
	}

	e.logger.Info().
		Str("stop_reason", resp.StopReason).
		Int("input_tokens", resp.InputTokens).
		Int("output_tokens", resp.OutputTokens).
		Msg("model call complete")

	summary := formatter.Format(resp.Content)
	return &summary, nil
}

func (e *Executor) buildPrompt(req models.CompletionRequest) (string, error) {
	var buf bytes.Buffer
	if err := e.promptTemplate.Execute(&buf, req); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}
