package usecase

import (
	"context"
	"fmt"

	"nutrition-agent/internal/nutrition"
)

// Dispatch runs one named operation against its parameter bag. The
// operation boundary never faults: unknown names, upstream failures and
// panics all come back as the error-variant result.
func (uc *implUseCase) Dispatch(ctx context.Context, operation string, params nutrition.Params) (result nutrition.OperationResult) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "Dispatch: panic in %s: %v", operation, r)
			result = nutrition.OperationResult{"error": fmt.Sprint(r)}
		}
	}()

	if params == nil {
		params = nutrition.Params{}
	}

	switch operation {
	case nutrition.OpAnalyzeFood:
		return uc.analyzeFood(ctx, params)
	case nutrition.OpCompareFoods:
		return uc.compareFoods(ctx, params)
	case nutrition.OpTrackCalories:
		return uc.trackCalories(ctx, params)
	case nutrition.OpQuickScan:
		return uc.quickScan(ctx, params)
	case nutrition.OpMealSuggestion:
		return uc.mealSuggestion(ctx, params)
	case nutrition.OpWeeklyMenu:
		return uc.weeklyMenu(ctx, params)
	case nutrition.OpDetailedRecipes:
		return uc.detailedRecipes(ctx, params)
	case nutrition.OpChat:
		return uc.chatOperation(ctx, params)
	default:
		return nutrition.OperationResult{
			"error": fmt.Sprintf("Function %s không tồn tại", operation),
		}
	}
}
