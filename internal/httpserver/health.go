package httpserver

import (
	"github.com/gin-gonic/gin"

	"nutrition-agent/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Nutrition Agent API is running"
	HealthVersion = "1.0.0"
	ServiceName   = "nutrition-agent"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy and list the available endpoints
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /api/health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"endpoints": gin.H{
			"agent":            "POST /api/agent",
			"agent_suggest":    "POST /api/agent/suggest",
			"agent_multi_step": "POST /api/agent/multi-step",
			"chat":             "POST /api/chat",
			"analyze_food":     "POST /api/analyze-food",
			"compare_foods":    "POST /api/compare-foods",
			"track_calories":   "POST /api/track-calories",
			"quick_scan":       "POST /api/quick-scan",
			"meal_suggestion":  "POST /api/meal-suggestion",
			"weekly_menu":      "POST /api/weekly-menu",
			"detailed_recipes": "POST /api/detailed-recipes",
			"save_profile":     "POST /api/user/profile",
			"get_profile":      "GET /api/user/profile/:id",
		},
	})
}
