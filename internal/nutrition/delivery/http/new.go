package http

import (
	"github.com/gin-gonic/gin"

	"nutrition-agent/internal/nutrition"
	pkgLog "nutrition-agent/pkg/log"
)

// Handler is the public interface for the nutrition HTTP delivery layer.
type Handler interface {
	Agent(c *gin.Context)
	AgentSuggest(c *gin.Context)
	AgentMultiStep(c *gin.Context)
	Chat(c *gin.Context)
	AnalyzeFood(c *gin.Context)
	CompareFoods(c *gin.Context)
	TrackCalories(c *gin.Context)
	QuickScan(c *gin.Context)
	MealSuggestion(c *gin.Context)
	WeeklyMenu(c *gin.Context)
	DetailedRecipes(c *gin.Context)
	SaveProfile(c *gin.Context)
	GetProfile(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc nutrition.UseCase
}

// New creates the HTTP handler for the nutrition domain.
func New(l pkgLog.Logger, uc nutrition.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
