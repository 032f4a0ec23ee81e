package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the nutrition API onto the group (mounted at /api).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	agent := rg.Group("/agent")
	{
		agent.POST("", h.Agent)
		agent.POST("/suggest", h.AgentSuggest)
		agent.POST("/multi-step", h.AgentMultiStep)
	}

	rg.POST("/chat", h.Chat)

	rg.POST("/analyze-food", h.AnalyzeFood)
	rg.POST("/compare-foods", h.CompareFoods)
	rg.POST("/track-calories", h.TrackCalories)
	rg.POST("/quick-scan", h.QuickScan)
	rg.POST("/meal-suggestion", h.MealSuggestion)
	rg.POST("/weekly-menu", h.WeeklyMenu)
	rg.POST("/detailed-recipes", h.DetailedRecipes)

	user := rg.Group("/user")
	{
		user.POST("/profile", h.SaveProfile)
		user.GET("/profile/:id", h.GetProfile)
	}
}
