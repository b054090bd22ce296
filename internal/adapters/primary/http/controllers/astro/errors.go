package astroController

import (
	"errors"
	"net/http"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/gin-gonic/gin"
)

// statusFor maps a pipeline error to the HTTP status and detail text the client sees
func statusFor(err error) (int, string) {
	var (
		notFound   *domain.NotFoundError
		storeErr   *domain.StoreError
		upstream   *domain.UpstreamError
		generation *domain.GenerationError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Error()
	case errors.As(err, &storeErr):
		return storeErr.HTTPStatus(), storeErr.Message
	case errors.As(err, &upstream):
		return http.StatusBadGateway, upstream.Message
	case errors.As(err, &generation):
		return http.StatusBadGateway, generation.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func (c *Controller) fail(ctx *gin.Context, op string, err error) {
	status, detail := statusFor(err)
	_ = ctx.Error(err)

	if status >= http.StatusInternalServerError {
		c.Log.Error("request failed", "op", op, "status", status, "error", err)
	} else {
		c.Log.Warn("request rejected", "op", op, "status", status, "error", err)
	}

	ctx.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

func (c *Controller) badRequest(ctx *gin.Context, op string, err error) {
	c.Log.Warn("invalid request body", "op", op, "error", err)
	ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
}
