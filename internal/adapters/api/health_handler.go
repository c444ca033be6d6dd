package api

import (
	"net/http"

	"climateapi.app/internal/ports"
	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of /api/health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: ports.StatusHealthy, Components: results}
	statusCode := http.StatusOK
	for _, status := range results {
		if status.Status == ports.StatusUnhealthy {
			response.Status = ports.StatusUnhealthy
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(statusCode, response)
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
