package usecase

import (
	"context"
	"fmt"

	"nutrition-agent/internal/model"
	"nutrition-agent/internal/nutrition"
	"nutrition-agent/pkg/openaichat"
)

// analyzeFood recognizes one dish photo and asks the vision model for a
// nutritional assessment.
func (uc *implUseCase) analyzeFood(ctx context.Context, params nutrition.Params) nutrition.OperationResult {
	image := params.String("image", "")
	healthCondition := params.String("health_condition", nutrition.DefaultHealthCondition)
	dietaryGoals := params.String("dietary_goals", nutrition.DefaultDietaryGoals)

	foods := uc.recognizeFoods(ctx, image)
	if len(foods) == 0 {
		return errorResult(nutrition.ErrNoRecognition)
	}

	analysis, err := uc.llm.CompleteVision(ctx, openaichat.VisionRequest{
		Prompt:    buildAnalyzePrompt(foods, healthCondition, dietaryGoals),
		Images:    []string{image},
		MaxTokens: 1500,
	})
	if err != nil {
		return errorResult(err)
	}

	return nutrition.OperationResult{
		"detected_foods":   foods,
		"analysis":         analysis,
		"health_condition": healthCondition,
		"dietary_goals":    dietaryGoals,
	}
}

// compareFoods recognizes each image independently and asks for a ranking.
// A recognition failure on one image leaves that dish's food list empty
// without aborting the batch.
func (uc *implUseCase) compareFoods(ctx context.Context, params nutrition.Params) nutrition.OperationResult {
	images := params.Strings("images")
	healthCondition := params.String("health_condition", nutrition.DefaultHealthCondition)

	dishes := make([]model.DishDetection, 0, len(images))
	for idx, img := range images {
		dishes = append(dishes, model.DishDetection{
			DishNumber: idx + 1,
			Foods:      uc.recognizeFoods(ctx, img),
		})
	}

	comparison, err := uc.llm.CompleteVision(ctx, openaichat.VisionRequest{
		Prompt:    buildComparePrompt(dishes, healthCondition),
		Images:    images,
		MaxTokens: 2000,
	})
	if err != nil {
		return errorResult(err)
	}

	return nutrition.OperationResult{
		"detected_foods": dishes,
		"comparison":     comparison,
		"total_foods":    len(images),
	}
}

var mealNames = []string{"Sáng", "Trưa", "Tối", "Phụ"}

// trackCalories treats each image as one meal of the day, in order.
func (uc *implUseCase) trackCalories(ctx context.Context, params nutrition.Params) nutrition.OperationResult {
	images := params.Strings("images")
	targetCalories := params.Int("target_calories", nutrition.DefaultTargetCalories)
	healthCondition := params.String("health_condition", nutrition.DefaultHealthCondition)

	meals := make([]model.MealDetection, 0, len(images))
	for idx, img := range images {
		name := fmt.Sprintf("Bữa %d", idx+1)
		if idx < len(mealNames) {
			name = "Bữa " + mealNames[idx]
		}
		meals = append(meals, model.MealDetection{
			MealName: name,
			Foods:    uc.recognizeFoods(ctx, img),
		})
	}

	tracking, err := uc.llm.CompleteVision(ctx, openaichat.VisionRequest{
		Prompt:    buildTrackPrompt(meals, targetCalories, healthCondition),
		Images:    images,
		MaxTokens: 2000,
	})
	if err != nil {
		return errorResult(err)
	}

	return nutrition.OperationResult{
		"daily_meals":     meals,
		"tracking":        tracking,
		"target_calories": targetCalories,
	}
}

// quickScan only names the dish; no model call beyond recognition.
func (uc *implUseCase) quickScan(ctx context.Context, params nutrition.Params) nutrition.OperationResult {
	foods := uc.recognizeFoods(ctx, params.String("image", ""))
	if len(foods) == 0 {
		return errorResult(nutrition.ErrNoRecognition)
	}

	return nutrition.OperationResult{
		"detected_foods": foods,
		"total":          len(foods),
	}
}

func (uc *implUseCase) mealSuggestion(ctx context.Context, params nutrition.Params) nutrition.OperationResult {
	mealTime := params.String("meal_time", nutrition.DefaultMealTime)

	suggestion, err := uc.llm.CompleteText(ctx, openaichat.TextRequest{
		Prompt: buildSuggestionPrompt(
			mealTime,
			params.String("health_condition", nutrition.DefaultHealthCondition),
			params.String("dietary_preferences", nutrition.DefaultDietaryPreferences),
			params.String("budget_range", nutrition.DefaultMealBudget),
			params.String("cooking_time", nutrition.DefaultCookingTime),
		),
		SystemPrompt: AgentSystemPrompt,
		MaxTokens:    1200,
	})
	if err != nil {
		return errorResult(err)
	}

	return nutrition.OperationResult{
		"suggestion": suggestion,
		"meal_time":  mealTime,
	}
}

func (uc *implUseCase) weeklyMenu(ctx context.Context, params nutrition.Params) nutrition.OperationResult {
	menu, err := uc.llm.CompleteText(ctx, openaichat.TextRequest{
		Prompt: buildWeeklyMenuPrompt(
			params.String("health_condition", nutrition.DefaultHealthCondition),
			params.String("dietary_preferences", nutrition.DefaultDietaryPreferences),
			params.String("budget_range", nutrition.DefaultDailyBudget),
			params.String("cooking_time", nutrition.DefaultMenuCookingTime),
		),
		SystemPrompt: AgentSystemPrompt,
		MaxTokens:    2500,
	})
	if err != nil {
		return errorResult(err)
	}

	return nutrition.OperationResult{
		"menu":     menu,
		"duration": "7 ngày",
	}
}

func (uc *implUseCase) detailedRecipes(ctx context.Context, params nutrition.Params) nutrition.OperationResult {
	days := params.Int("days", nutrition.DefaultRecipeDays)

	recipes, err := uc.llm.CompleteText(ctx, openaichat.TextRequest{
		Prompt: buildRecipesPrompt(
			days,
			params.String("health_condition", nutrition.DefaultHealthCondition),
			params.String("dietary_preferences", nutrition.DefaultDietaryPreferences),
			params.String("budget_range", nutrition.DefaultDailyBudget),
		),
		SystemPrompt: AgentSystemPrompt,
		MaxTokens:    3000,
	})
	if err != nil {
		return errorResult(err)
	}

	return nutrition.OperationResult{
		"recipes": recipes,
		"days":    days,
	}
}

// chatOperation is the dispatcher's free-form path, used when the
// classifier lands on the chat intent.
func (uc *implUseCase) chatOperation(ctx context.Context, params nutrition.Params) nutrition.OperationResult {
	reply, err := uc.llm.CompleteText(ctx, openaichat.TextRequest{
		Prompt:       params.String("message", ""),
		SystemPrompt: AgentSystemPrompt,
		Model:        uc.intentModel,
		MaxTokens:    1500,
	})
	if err != nil {
		return errorResult(err)
	}

	return nutrition.OperationResult{"reply": reply}
}
