package routes

import (
	"github.com/gin-gonic/gin"

	"crisisvision/config"
	"crisisvision/handlers"
	"crisisvision/pipeline"
)

func SetupRouter(cfg config.Config, ctrl *pipeline.Controller) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		handlers.Root(c, cfg)
	})
	r.GET("/health", func(c *gin.Context) {
		handlers.Health(c, cfg)
	})

	// Inject the pipeline controller into the analysis handlers
	r.POST("/analyze", func(c *gin.Context) {
		handlers.Analyze(c, ctrl)
	})
	r.POST("/test", func(c *gin.Context) {
		handlers.TestMode(c, ctrl)
	})

	return r
}
