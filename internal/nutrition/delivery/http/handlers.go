package http

import (
	"github.com/gin-gonic/gin"

	"nutrition-agent/internal/nutrition"
	"nutrition-agent/pkg/response"
)

// Agent godoc
// @Summary     Process a message through the agent
// @Description Classifies the message into an operation, resolves parameters against the stored profile, and executes it unless auto_execute is false.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body agentReq true "User message with optional base64 images"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.ErrResp "Empty message"
// @Failure     500 {object} response.ErrResp
// @Router      /api/agent [POST]
func (h *handler) Agent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAgentReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	out, err := h.uc.ProcessMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newAgentResp(out))
}

// AgentSuggest godoc
// @Summary     Suggest an operation without executing
// @Description Runs intent analysis and returns a readable checklist of required parameters.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "User message"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.ErrResp "Empty message"
// @Router      /api/agent/suggest [POST]
func (h *handler) AgentSuggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	out, err := h.uc.SuggestOnly(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestOnly: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSuggestResp(out))
}

// AgentMultiStep godoc
// @Summary     Run a fixed multi-step workflow
// @Description Executes complete_analysis, daily_tracking or meal_planning and returns the ordered step results.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body workflowReq true "Workflow name with optional images and preferences"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.ErrResp "Unknown workflow"
// @Router      /api/agent/multi-step [POST]
func (h *handler) AgentMultiStep(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWorkflowReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	out, err := h.uc.RunWorkflow(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RunWorkflow: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newWorkflowResp(out))
}

// Chat godoc
// @Summary     Free-form chat
// @Description Plain conversation with the nutrition persona, continuing the session's history. With use_agent the message goes through the full agent pipeline instead.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.ErrResp "Empty message"
// @Failure     500 {object} response.ErrResp
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if req.UseAgent {
		out, err := h.uc.ProcessMessage(ctx, req.toAgentInput())
		if err != nil {
			h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
			h.respondError(c, err)
			return
		}
		response.OK(c, newAgentResp(out))
		return
	}

	out, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newChatResp(out))
}

// AnalyzeFood godoc
// @Summary     Analyze one dish photo
// @Description Recognizes the dish and returns a nutritional assessment for the given health condition and goals.
// @Tags        Operations
// @Accept      json
// @Produce     json
// @Param       body body analyzeFoodReq true "Base64 image with optional health context"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.ErrResp "Missing image or nothing recognized"
// @Router      /api/analyze-food [POST]
func (h *handler) AnalyzeFood(c *gin.Context) {
	req, err := h.processAnalyzeFoodReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondResult(c, h.uc.Dispatch(c.Request.Context(), nutrition.OpAnalyzeFood, req.toParams()))
}

// CompareFoods godoc
// @Summary     Compare two or more dishes
// @Description Recognizes each image and ranks the dishes for the given health condition.
// @Tags        Operations
// @Accept      json
// @Produce     json
// @Param       body body compareFoodsReq true "At least two base64 images"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.ErrResp "Fewer than two images"
// @Router      /api/compare-foods [POST]
func (h *handler) CompareFoods(c *gin.Context) {
	req, err := h.processCompareFoodsReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondResult(c, h.uc.Dispatch(c.Request.Context(), nutrition.OpCompareFoods, req.toParams()))
}

// TrackCalories godoc
// @Summary     Track a day's meals
// @Description Treats each image as one meal in order and totals the day against the calorie target.
// @Tags        Operations
// @Accept      json
// @Produce     json
// @Param       body body trackCaloriesReq true "Meal images in order"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.ErrResp "No images"
// @Router      /api/track-calories [POST]
func (h *handler) TrackCalories(c *gin.Context) {
	req, err := h.processTrackCaloriesReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondResult(c, h.uc.Dispatch(c.Request.Context(), nutrition.OpTrackCalories, req.toParams()))
}

// QuickScan godoc
// @Summary     Name the dish in a photo
// @Description Recognition only, no nutritional analysis.
// @Tags        Operations
// @Accept      json
// @Produce     json
// @Param       body body quickScanReq true "Base64 image"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.ErrResp "Missing image or nothing recognized"
// @Router      /api/quick-scan [POST]
func (h *handler) QuickScan(c *gin.Context) {
	req, err := h.processQuickScanReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondResult(c, h.uc.Dispatch(c.Request.Context(), nutrition.OpQuickScan, req.toParams()))
}

// MealSuggestion godoc
// @Summary     Suggest one meal
// @Tags        Operations
// @Accept      json
// @Produce     json
// @Param       body body mealSuggestionReq true "Meal constraints, all optional"
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} response.ErrResp
// @Router      /api/meal-suggestion [POST]
func (h *handler) MealSuggestion(c *gin.Context) {
	req, err := h.processMealSuggestionReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondResult(c, h.uc.Dispatch(c.Request.Context(), nutrition.OpMealSuggestion, req.toParams()))
}

// WeeklyMenu godoc
// @Summary     Build a 7-day menu
// @Tags        Operations
// @Accept      json
// @Produce     json
// @Param       body body weeklyMenuReq true "Menu constraints, all optional"
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} response.ErrResp
// @Router      /api/weekly-menu [POST]
func (h *handler) WeeklyMenu(c *gin.Context) {
	req, err := h.processWeeklyMenuReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondResult(c, h.uc.Dispatch(c.Request.Context(), nutrition.OpWeeklyMenu, req.toParams()))
}

// DetailedRecipes godoc
// @Summary     Detailed recipes for several days
// @Tags        Operations
// @Accept      json
// @Produce     json
// @Param       body body detailedRecipesReq true "Recipe constraints, all optional"
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} response.ErrResp
// @Router      /api/detailed-recipes [POST]
func (h *handler) DetailedRecipes(c *gin.Context) {
	req, err := h.processDetailedRecipesReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondResult(c, h.uc.Dispatch(c.Request.Context(), nutrition.OpDetailedRecipes, req.toParams()))
}

// SaveProfile godoc
// @Summary     Save a user profile
// @Description Stores the profile wholesale. A user id is minted when absent.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body saveProfileReq true "Profile fields"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.ErrResp
// @Router      /api/user/profile [POST]
func (h *handler) SaveProfile(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveProfileReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.uc.SaveProfile(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveProfile: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"user_id": userID,
		"message": "Đã lưu thông tin người dùng",
	})
}

// GetProfile godoc
// @Summary     Get a user profile
// @Tags        Profile
// @Produce     json
// @Param       id path string true "User id"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} response.ErrResp "Unknown user"
// @Router      /api/user/profile/{id} [GET]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	profile, err := h.uc.GetProfile(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, profile)
}
