package models

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeInvalidPrompt     ErrorCode = "INVALID_PROMPT"
	ErrCodePromptTooLong     ErrorCode = "PROMPT_TOO_LONG"
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrCodeAuthentication    ErrorCode = "AUTHENTICATION_ERROR"
	ErrCodeTimeout           ErrorCode = "TIMEOUT"
	ErrCodeUnknown           ErrorCode = "UNKNOWN_ERROR"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// APIError is a classified failure surfaced to the caller. RetryAfter is in
// seconds and only set for RATE_LIMIT_EXCEEDED.
type APIError struct {
	Code       ErrorCode
	Message    string
	RetryAfter int
}

func NewAPIError(code ErrorCode, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeInvalidPrompt, ErrCodePromptTooLong, ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeAuthentication:
		return http.StatusUnauthorized
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
