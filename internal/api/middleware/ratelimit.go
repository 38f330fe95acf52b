package middleware

import (
	"math"
	"net"
	"net/http"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/heridev/go-llm-server/internal/models"
	"github.com/heridev/go-llm-server/internal/ratelimit"
	"github.com/rs/zerolog/log"
)

// RateLimit enforces a per-client-IP request budget. Limiter failures fail
// open so a broken Redis cannot take the API down.
func RateLimit(limiter ratelimit.Limiter) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		ip := clientIP(req.Request)

		allowed, retryAfter, err := limiter.Allow(req.Request.Context(), ip)
		if err != nil {
			log.Warn().Err(err).Str("client_ip", ip).Msg("rate limiter unavailable")
			chain.ProcessFilter(req, resp)
			return
		}

		if !allowed {
			apiErr := models.NewAPIError(models.ErrCodeRateLimitExceeded, "Too many requests, please try again later")
			apiErr.RetryAfter = int(math.Ceil(retryAfter.Seconds()))
			writeError(resp, apiErr)
			return
		}

		chain.ProcessFilter(req, resp)
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx != -1 {
			forwarded = forwarded[:idx]
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
