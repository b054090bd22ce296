package healthcheckController

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SagarBajaj14/CelestAI.io/internal/ports/persistence"
	"github.com/gin-gonic/gin"
)

const readyTimeout = 3 * time.Second

type HealthCheckController struct {
	store persistence.RecordStore
	log   *slog.Logger
}

func New(store persistence.RecordStore, log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		store: store,
		log:   log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health is a liveness probe and always answers 200
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "celestai",
	})
}

// ready checks that the record store answers
func (c *HealthCheckController) ready(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readyTimeout)
	defer cancel()

	if err := c.store.Ping(pingCtx); err != nil {
		c.log.Error("record store not ready", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "record store unavailable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}
