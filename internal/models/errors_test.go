package models

import (
	"net/http"
	"testing"
)

func TestAPIError_HTTPStatus(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeInvalidPrompt, http.StatusBadRequest},
		{ErrCodePromptTooLong, http.StatusBadRequest},
		{ErrCodeInvalidRequest, http.StatusBadRequest},
		{ErrCodeAuthentication, http.StatusUnauthorized},
		{ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{ErrCodeTimeout, http.StatusGatewayTimeout},
		{ErrCodeUnknown, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		err := NewAPIError(tc.code, "test")
		if got := err.HTTPStatus(); got != tc.want {
			t.Errorf("Code %s: expected status %d, got %d", tc.code, tc.want, got)
		}
	}
}

func TestAPIError_Error(t *testing.T) {
	err := NewAPIError(ErrCodeTimeout, "upstream timed out")
	if err.Error() != "TIMEOUT: upstream timed out" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}

	bare := &APIError{Code: ErrCodeUnknown}
	if bare.Error() != "UNKNOWN_ERROR" {
		t.Errorf("Unexpected error string for bare error: %s", bare.Error())
	}
}

func TestGenerateRequest_Normalize(t *testing.T) {
	req := GenerateRequest{Prompt: "hi"}.Normalize()

	if req.Temperature != DefaultTemperature {
		t.Errorf("Expected default temperature %f, got %f", DefaultTemperature, req.Temperature)
	}
	if req.MaxTokens != DefaultMaxTokens {
		t.Errorf("Expected default max tokens %d, got %d", DefaultMaxTokens, req.MaxTokens)
	}
	if req.TopP != DefaultTopP {
		t.Errorf("Expected default top_p %f, got %f", DefaultTopP, req.TopP)
	}
}

func TestGenerateRequest_Normalize_ExplicitZeroHonored(t *testing.T) {
	zero := 0.0
	tokens := 16
	req := GenerateRequest{Prompt: "hi", Temperature: &zero, MaxTokens: &tokens}.Normalize()

	if req.Temperature != 0.0 {
		t.Errorf("Expected explicit temperature 0 honored, got %f", req.Temperature)
	}
	if req.MaxTokens != 16 {
		t.Errorf("Expected max tokens 16, got %d", req.MaxTokens)
	}
	if req.TopP != DefaultTopP {
		t.Errorf("Expected default top_p %f, got %f", DefaultTopP, req.TopP)
	}
}
