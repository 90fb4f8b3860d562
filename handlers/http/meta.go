package httpHandler

import (
	"energy-server/confs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health is the unauthenticated liveness endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   confs.ServiceName,
		"version":   confs.ServiceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Index describes the service and its endpoint map.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     confs.ServiceName,
		"version":     confs.ServiceVersion,
		"description": "REST backend for a personal energy-monitoring dashboard",
		"endpoints": gin.H{
			"POST /api/register":       "create an account, returns user and token",
			"POST /api/login":          "authenticate, returns user and token",
			"GET /api/profile":         "authenticated user's profile",
			"POST /api/readings":       "store a power/energy/cost reading",
			"GET /api/readings":        "list readings, newest first, max 100",
			"GET /api/readings/latest": "most recent reading",
			"GET /api/cache/stats":     "latest-reading cache counters",
			"GET /health":              "service health",
		},
	})
}
