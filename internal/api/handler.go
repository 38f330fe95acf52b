package api

import (
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/heridev/go-llm-server/internal/api/middleware"
	"github.com/heridev/go-llm-server/internal/executor"
	"github.com/heridev/go-llm-server/internal/models"
	"github.com/rs/zerolog"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Handler struct {
	executor *executor.Executor
	logger   *zerolog.Logger
}

func NewHandler(executor *executor.Executor, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: executor,
		logger:   logger,
	}
}

// POST /api/v1/generate
// Body: GenerateRequest
// Returns: GenerateResponse
func (h *Handler) Generate(req *restful.Request, resp *restful.Response) {
	var genRequest models.GenerateRequest
	if err := req.ReadEntity(&genRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, models.NewAPIError(models.ErrCodeInvalidRequest, "Request body must be valid JSON"))
		return
	}

	requestID := uuid.NewString()
	h.logger.Info().
		Str("request_id", requestID).
		Int("prompt_chars", utf8.RuneCountInString(genRequest.Prompt)).
		Msg("Start generation")

	ctx := req.Request.Context()
	completion := genRequest.Normalize()

	summary, err := h.executor.Execute(ctx, completion)
	if err != nil {
		h.logger.Warn().Err(err).Str("request_id", requestID).Msg("Generation failed")
		middleware.HandleError(resp, err)
		return
	}

	h.logger.Info().
		Str("request_id", requestID).
		Int("summary_points", len(summary.SummaryPoints)).
		Float64("confidence", summary.Confidence).
		Msg("Generation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, models.GenerateResponse{
		Success:   true,
		Data:      *summary,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
