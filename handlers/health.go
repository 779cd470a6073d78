package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crisisvision/config"
)

const serviceVersion = "1.0.0"

// Root reports the service identity.
func Root(c *gin.Context, cfg config.Config) {
	c.JSON(http.StatusOK, gin.H{
		"service":      "CrisisVision Orchestrator",
		"version":      serviceVersion,
		"status":       "operational",
		"mcp_services": len(cfg.ProviderURLs),
	})
}

// Health reports liveness and the configured provider endpoints.
func Health(c *gin.Context, cfg config.Config) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"services": cfg.ProviderURLs,
	})
}
