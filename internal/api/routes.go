package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/heridev/go-llm-server/internal/api/middleware"
	"github.com/heridev/go-llm-server/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/generate").
			To(handler.Generate).
			Doc("Generate a mobile-optimized summary for a prompt").
			Metadata(restfulspec.KeyOpenAPITags, []string{"generate"}).
			Reads(models.GenerateRequest{}).
			Writes(models.GenerateResponse{}).
			Returns(200, "OK", models.GenerateResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(401, "Authentication Error", middleware.ErrorResponse{}).
			Returns(429, "Rate Limit Exceeded", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}).
			Returns(504, "Upstream Timeout", middleware.ErrorResponse{}))

	container.Add(ws)
}
