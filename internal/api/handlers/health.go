package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/scales-api/internal/theory"
	"github.com/gin-gonic/gin"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"scale_types": len(theory.Definitions()),
	})
}
