package http

import (
	"github.com/gin-gonic/gin"

	"nutrition-agent/internal/model"
	"nutrition-agent/internal/nutrition"
)

// --- Request DTOs ---

type agentReq struct {
	Message     string   `json:"message"`
	Images      []string `json:"images"`
	SessionID   string   `json:"session_id"`
	UserID      string   `json:"user_id"`
	AutoExecute *bool    `json:"auto_execute"`
}

func (r agentReq) toInput() nutrition.AgentInput {
	// auto_execute defaults on; the suggest-only path has its own route.
	autoExecute := true
	if r.AutoExecute != nil {
		autoExecute = *r.AutoExecute
	}
	return nutrition.AgentInput{
		Message:     r.Message,
		Images:      r.Images,
		SessionID:   r.SessionID,
		UserID:      r.UserID,
		AutoExecute: autoExecute,
	}
}

type suggestReq struct {
	Message   string   `json:"message"`
	Images    []string `json:"images"`
	SessionID string   `json:"session_id"`
}

func (r suggestReq) toInput() nutrition.SuggestInput {
	return nutrition.SuggestInput{
		Message:   r.Message,
		Images:    r.Images,
		SessionID: r.SessionID,
	}
}

type workflowReq struct {
	Workflow    string         `json:"workflow"`
	Images      []string       `json:"images"`
	Preferences map[string]any `json:"preferences"`
}

func (r workflowReq) toInput() nutrition.WorkflowInput {
	workflow := r.Workflow
	if workflow == "" {
		workflow = nutrition.WorkflowCompleteAnalysis
	}
	return nutrition.WorkflowInput{
		Workflow:    workflow,
		Images:      r.Images,
		Preferences: nutrition.Params(r.Preferences),
	}
}

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	UseAgent  bool   `json:"use_agent"` // delegate to the agent pipeline instead of plain chat
}

func (r chatReq) toInput() nutrition.ChatInput {
	return nutrition.ChatInput{
		Message:   r.Message,
		SessionID: r.SessionID,
	}
}

func (r chatReq) toAgentInput() nutrition.AgentInput {
	return nutrition.AgentInput{
		Message:     r.Message,
		SessionID:   r.SessionID,
		AutoExecute: true,
	}
}

type analyzeFoodReq struct {
	Image           string `json:"image"`
	HealthCondition string `json:"health_condition"`
	DietaryGoals    string `json:"dietary_goals"`
}

func (r analyzeFoodReq) toParams() nutrition.Params {
	p := nutrition.Params{"image": r.Image}
	putString(p, "health_condition", r.HealthCondition)
	putString(p, "dietary_goals", r.DietaryGoals)
	return p
}

type compareFoodsReq struct {
	Images          []string `json:"images"`
	HealthCondition string   `json:"health_condition"`
}

func (r compareFoodsReq) toParams() nutrition.Params {
	p := nutrition.Params{"images": r.Images}
	putString(p, "health_condition", r.HealthCondition)
	return p
}

type trackCaloriesReq struct {
	Images          []string `json:"images"`
	TargetCalories  int      `json:"target_calories"`
	HealthCondition string   `json:"health_condition"`
}

func (r trackCaloriesReq) toParams() nutrition.Params {
	p := nutrition.Params{"images": r.Images}
	if r.TargetCalories > 0 {
		p["target_calories"] = r.TargetCalories
	}
	putString(p, "health_condition", r.HealthCondition)
	return p
}

type quickScanReq struct {
	Image string `json:"image"`
}

func (r quickScanReq) toParams() nutrition.Params {
	return nutrition.Params{"image": r.Image}
}

type mealSuggestionReq struct {
	MealTime           string `json:"meal_time"`
	HealthCondition    string `json:"health_condition"`
	DietaryPreferences string `json:"dietary_preferences"`
	BudgetRange        string `json:"budget_range"`
	CookingTime        string `json:"cooking_time"`
}

func (r mealSuggestionReq) toParams() nutrition.Params {
	p := nutrition.Params{}
	putString(p, "meal_time", r.MealTime)
	putString(p, "health_condition", r.HealthCondition)
	putString(p, "dietary_preferences", r.DietaryPreferences)
	putString(p, "budget_range", r.BudgetRange)
	putString(p, "cooking_time", r.CookingTime)
	return p
}

type weeklyMenuReq struct {
	HealthCondition    string `json:"health_condition"`
	DietaryPreferences string `json:"dietary_preferences"`
	BudgetRange        string `json:"budget_range"`
	CookingTime        string `json:"cooking_time"`
}

func (r weeklyMenuReq) toParams() nutrition.Params {
	p := nutrition.Params{}
	putString(p, "health_condition", r.HealthCondition)
	putString(p, "dietary_preferences", r.DietaryPreferences)
	putString(p, "budget_range", r.BudgetRange)
	putString(p, "cooking_time", r.CookingTime)
	return p
}

type detailedRecipesReq struct {
	Days               int    `json:"days"`
	HealthCondition    string `json:"health_condition"`
	DietaryPreferences string `json:"dietary_preferences"`
	BudgetRange        string `json:"budget_range"`
}

func (r detailedRecipesReq) toParams() nutrition.Params {
	p := nutrition.Params{}
	if r.Days > 0 {
		p["days"] = r.Days
	}
	putString(p, "health_condition", r.HealthCondition)
	putString(p, "dietary_preferences", r.DietaryPreferences)
	putString(p, "budget_range", r.BudgetRange)
	return p
}

type saveProfileReq struct {
	UserID             string   `json:"user_id"`
	Name               string   `json:"name"`
	Age                int      `json:"age"`
	Weight             float64  `json:"weight"`
	Height             float64  `json:"height"`
	HealthCondition    string   `json:"health_condition"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Allergies          []string `json:"allergies"`
	TargetCalories     int      `json:"target_calories"`
	ActivityLevel      string   `json:"activity_level"`
}

func (r saveProfileReq) toInput() nutrition.SaveProfileInput {
	return nutrition.SaveProfileInput{
		UserID: r.UserID,
		Profile: model.UserProfile{
			Name:               r.Name,
			Age:                r.Age,
			Weight:             r.Weight,
			Height:             r.Height,
			HealthCondition:    r.HealthCondition,
			DietaryPreferences: r.DietaryPreferences,
			Allergies:          r.Allergies,
			TargetCalories:     r.TargetCalories,
			ActivityLevel:      r.ActivityLevel,
		},
	}
}

// putString sets key only when the value is non-empty, so operation defaults
// still apply downstream.
func putString(p nutrition.Params, key, value string) {
	if value != "" {
		p[key] = value
	}
}

// --- Response builders ---

func newAgentResp(out nutrition.AgentOutput) gin.H {
	return gin.H{
		"success":         true,
		"session_id":      out.SessionID,
		"intent_analysis": out.Intent,
		"result":          out.Result,
		"suggestions":     out.Suggestions,
		"executed":        out.Executed,
	}
}

func newSuggestResp(out nutrition.SuggestOutput) gin.H {
	return gin.H{
		"success":         true,
		"intent_analysis": out.Intent,
		"message":         out.Message,
		"can_execute":     out.CanExecute,
	}
}

func newWorkflowResp(out nutrition.WorkflowOutput) gin.H {
	return gin.H{
		"success":  true,
		"workflow": out.Workflow,
		"steps":    out.Steps,
		"summary":  out.Summary,
	}
}

func newChatResp(out nutrition.ChatOutput) gin.H {
	return gin.H{
		"success":    true,
		"reply":      out.Reply,
		"session_id": out.SessionID,
	}
}

// newOperationResp flattens an operation's payload into the response body
// alongside the success flag.
func newOperationResp(result nutrition.OperationResult) gin.H {
	body := gin.H{"success": true}
	for k, v := range result {
		body[k] = v
	}
	return body
}
