package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns the health status of the API
func HealthCheck(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Repas API is running",
			"version": version,
		})
	}
}

// RegisterRoutes registers the health checks and mounts the handler's routes
// both at the root and under /api/v1. Generation limits only apply to routes
// that call the text-generation service.
func RegisterRoutes(router *gin.Engine, h *Handler, version string, generationLimits ...gin.HandlerFunc) {
	router.GET("/health", HealthCheck(version))
	router.GET("/api/health", HealthCheck(version))

	h.RegisterRoutes(router, generationLimits...)
	h.RegisterRoutes(router.Group("/api/v1"), generationLimits...)
}
