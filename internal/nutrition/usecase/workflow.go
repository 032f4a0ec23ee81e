package usecase

import (
	"context"
	"fmt"

	"nutrition-agent/internal/nutrition"
)

// RunWorkflow executes one of the fixed multi-step sequences. Steps run in
// order and every step's result is kept, error variant or not. Sequences
// that start from images produce no steps when none were sent.
func (uc *implUseCase) RunWorkflow(ctx context.Context, input nutrition.WorkflowInput) (nutrition.WorkflowOutput, error) {
	prefs := input.Preferences
	if prefs == nil {
		prefs = nutrition.Params{}
	}

	var steps []nutrition.WorkflowStep
	switch input.Workflow {
	case nutrition.WorkflowCompleteAnalysis:
		steps = uc.runCompleteAnalysis(ctx, input.Images, prefs)
	case nutrition.WorkflowDailyTracking:
		steps = uc.runDailyTracking(ctx, input.Images, prefs)
	case nutrition.WorkflowMealPlanning:
		steps = uc.runMealPlanning(ctx, prefs)
	default:
		return nutrition.WorkflowOutput{}, nutrition.ErrUnknownWorkflow
	}

	return nutrition.WorkflowOutput{
		Workflow: input.Workflow,
		Steps:    steps,
		Summary:  fmt.Sprintf("Đã hoàn thành %d bước trong workflow '%s'", len(steps), input.Workflow),
	}, nil
}

// runCompleteAnalysis scans a dish, analyzes it, then suggests the next
// meal around it.
func (uc *implUseCase) runCompleteAnalysis(ctx context.Context, images []string, prefs nutrition.Params) []nutrition.WorkflowStep {
	if len(images) == 0 {
		return []nutrition.WorkflowStep{}
	}
	image := images[0]

	steps := make([]nutrition.WorkflowStep, 0, 3)
	steps = appendStep(steps, nutrition.OpQuickScan, uc.Dispatch(ctx, nutrition.OpQuickScan, nutrition.Params{
		"image": image,
	}))
	steps = appendStep(steps, nutrition.OpAnalyzeFood, uc.Dispatch(ctx, nutrition.OpAnalyzeFood, nutrition.Params{
		"image":            image,
		"health_condition": prefs.String("health_condition", nutrition.DefaultHealthCondition),
		"dietary_goals":    prefs.String("dietary_goals", nutrition.DefaultDietaryGoals),
	}))
	steps = appendStep(steps, nutrition.OpMealSuggestion, uc.Dispatch(ctx, nutrition.OpMealSuggestion, nutrition.Params{
		"meal_time":           "trưa",
		"health_condition":    prefs.String("health_condition", nutrition.DefaultHealthCondition),
		"dietary_preferences": "tương tự món vừa phân tích",
		"budget_range":        prefs.String("budget_range", nutrition.DefaultMealBudget),
		"cooking_time":        nutrition.DefaultCookingTime,
	}))
	return steps
}

// runDailyTracking totals the day's meals then suggests dinner to balance
// them.
func (uc *implUseCase) runDailyTracking(ctx context.Context, images []string, prefs nutrition.Params) []nutrition.WorkflowStep {
	if len(images) == 0 {
		return []nutrition.WorkflowStep{}
	}

	steps := make([]nutrition.WorkflowStep, 0, 2)
	steps = appendStep(steps, nutrition.OpTrackCalories, uc.Dispatch(ctx, nutrition.OpTrackCalories, nutrition.Params{
		"images":           images,
		"target_calories":  prefs.Int("target_calories", nutrition.DefaultTargetCalories),
		"health_condition": prefs.String("health_condition", nutrition.DefaultHealthCondition),
	}))
	steps = appendStep(steps, nutrition.OpMealSuggestion, uc.Dispatch(ctx, nutrition.OpMealSuggestion, nutrition.Params{
		"meal_time":           "tối",
		"health_condition":    prefs.String("health_condition", nutrition.DefaultHealthCondition),
		"dietary_preferences": "cân bằng với các bữa đã ăn",
		"budget_range":        prefs.String("budget_range", nutrition.DefaultMealBudget),
	}))
	return steps
}

// runMealPlanning builds out from one suggestion to recipes to a full week.
func (uc *implUseCase) runMealPlanning(ctx context.Context, prefs nutrition.Params) []nutrition.WorkflowStep {
	common := nutrition.Params{
		"health_condition":    prefs.String("health_condition", nutrition.DefaultHealthCondition),
		"dietary_preferences": prefs.String("dietary_preferences", nutrition.DefaultDietaryPreferences),
		"budget_range":        prefs.String("budget_range", nutrition.DefaultDailyBudget),
	}

	suggestionParams := nutrition.Params{
		"meal_time":    prefs.String("meal_time", nutrition.DefaultMealTime),
		"cooking_time": prefs.String("cooking_time", nutrition.DefaultCookingTime),
	}
	recipeParams := nutrition.Params{"days": nutrition.DefaultRecipeDays}
	menuParams := nutrition.Params{
		"cooking_time": prefs.String("cooking_time", nutrition.DefaultMenuCookingTime),
	}
	for k, v := range common {
		suggestionParams[k] = v
		recipeParams[k] = v
		menuParams[k] = v
	}

	steps := make([]nutrition.WorkflowStep, 0, 3)
	steps = appendStep(steps, nutrition.OpMealSuggestion, uc.Dispatch(ctx, nutrition.OpMealSuggestion, suggestionParams))
	steps = appendStep(steps, nutrition.OpDetailedRecipes, uc.Dispatch(ctx, nutrition.OpDetailedRecipes, recipeParams))
	steps = appendStep(steps, nutrition.OpWeeklyMenu, uc.Dispatch(ctx, nutrition.OpWeeklyMenu, menuParams))
	return steps
}

func appendStep(steps []nutrition.WorkflowStep, action string, result nutrition.OperationResult) []nutrition.WorkflowStep {
	return append(steps, nutrition.WorkflowStep{
		Step:   len(steps) + 1,
		Action: action,
		Result: result,
	})
}
