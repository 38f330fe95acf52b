package middleware

import (
	"errors"

	"github.com/emicklei/go-restful/v3"
	"github.com/heridev/go-llm-server/internal/models"
)

// ErrorResponse is the JSON envelope for every failure.
type ErrorResponse struct {
	Error      string           `json:"error"`
	Code       models.ErrorCode `json:"code"`
	RetryAfter int              `json:"retryAfter,omitempty"`
}

// HandleError writes the classified error envelope. Unclassified errors map
// to INTERNAL_ERROR without leaking internal detail.
func HandleError(resp *restful.Response, err error) {
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		apiErr = models.NewAPIError(models.ErrCodeInternal, "Internal server error")
	}
	writeError(resp, apiErr)
}

func writeError(resp *restful.Response, apiErr *models.APIError) {
	message := apiErr.Message
	if message == "" {
		message = "Request failed"
	}

	resp.WriteHeaderAndEntity(apiErr.HTTPStatus(), ErrorResponse{
		Error:      message,
		Code:       apiErr.Code,
		RetryAfter: apiErr.RetryAfter,
	})
}
