package middleware

import (
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/heridev/go-llm-server/internal/models"
	"github.com/rs/zerolog/log"
)

// Logger logs every request with method, path, status and duration.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()
	chain.ProcessFilter(req, resp)

	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request handled")
}

// RecoverPanic converts handler panics into a generic 500 response.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Msg("panic recovered")
			writeError(resp, models.NewAPIError(models.ErrCodeInternal, "Internal server error"))
		}
	}()

	chain.ProcessFilter(req, resp)
}
