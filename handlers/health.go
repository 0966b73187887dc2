package handlers

import (
	"net/http"

	"cpicareers/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency probe.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": statusText(status), "dependencies": status})
}

func statusText(s utils.HealthStatus) string {
	if s.Healthy() {
		return "ok"
	}
	return "degraded"
}
