package http

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"nutrition-agent/internal/nutrition"
)

// bindJSON wraps every bind failure in errInvalidBody so malformed JSON
// maps to 400 on all routes alike.
func bindJSON(c *gin.Context, out any) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

func (h *handler) processAgentReq(c *gin.Context) (agentReq, error) {
	var req agentReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, nutrition.ErrEmptyMessage
	}
	return req, nil
}

func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, nutrition.ErrEmptyMessage
	}
	return req, nil
}

func (h *handler) processWorkflowReq(c *gin.Context) (workflowReq, error) {
	var req workflowReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, nutrition.ErrEmptyMessage
	}
	return req, nil
}

func (h *handler) processAnalyzeFoodReq(c *gin.Context) (analyzeFoodReq, error) {
	var req analyzeFoodReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	if req.Image == "" {
		return req, nutrition.ErrNoImages
	}
	return req, nil
}

func (h *handler) processCompareFoodsReq(c *gin.Context) (compareFoodsReq, error) {
	var req compareFoodsReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	if len(req.Images) < 2 {
		return req, nutrition.ErrNotEnoughImages
	}
	return req, nil
}

func (h *handler) processTrackCaloriesReq(c *gin.Context) (trackCaloriesReq, error) {
	var req trackCaloriesReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	if len(req.Images) == 0 {
		return req, nutrition.ErrNoImages
	}
	return req, nil
}

func (h *handler) processQuickScanReq(c *gin.Context) (quickScanReq, error) {
	var req quickScanReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	if req.Image == "" {
		return req, nutrition.ErrNoImages
	}
	return req, nil
}

func (h *handler) processMealSuggestionReq(c *gin.Context) (mealSuggestionReq, error) {
	var req mealSuggestionReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processWeeklyMenuReq(c *gin.Context) (weeklyMenuReq, error) {
	var req weeklyMenuReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processDetailedRecipesReq(c *gin.Context) (detailedRecipesReq, error) {
	var req detailedRecipesReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSaveProfileReq(c *gin.Context) (saveProfileReq, error) {
	var req saveProfileReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, nil
}
