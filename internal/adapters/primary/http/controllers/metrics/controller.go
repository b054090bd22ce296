package metricsController

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controller struct {
	path string
}

func New(path string) *Controller {
	if path == "" {
		path = "/metrics"
	}
	return &Controller{path: path}
}

func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET(c.path, gin.WrapH(promhttp.Handler()))
}
