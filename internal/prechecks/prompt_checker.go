package prechecks

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heridev/go-llm-server/internal/models"
)

// ValidatePrompt rejects empty or over-length prompts. It runs before the
// upstream client, so rejected prompts never cause an outbound call.
func ValidatePrompt(prompt string) *models.APIError {
	if strings.TrimSpace(prompt) == "" {
		return models.NewAPIError(models.ErrCodeInvalidPrompt, "Prompt is required and must be a non-empty string")
	}

	if utf8.RuneCountInString(prompt) > models.MaxPromptLength {
		return models.NewAPIError(
			models.ErrCodePromptTooLong,
			fmt.Sprintf("Prompt exceeds the maximum length of %d characters", models.MaxPromptLength),
		)
	}

	return nil
}
