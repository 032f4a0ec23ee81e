package usecase

import (
	"context"
	"regexp"
	"strings"

	"nutrition-agent/internal/model"
	"nutrition-agent/internal/nutrition"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// errorResult builds the error-variant operation result.
func errorResult(err error) nutrition.OperationResult {
	return nutrition.OperationResult{"error": err.Error()}
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	matches := fenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first { and last }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// recognizeFoods runs the recognizer on one image and degrades every
// failure to an empty list after logging it. Callers cannot distinguish
// "nothing recognized" from "recognizer failed"; the log line can.
func (uc *implUseCase) recognizeFoods(ctx context.Context, image string) []model.DetectedFood {
	concepts, err := uc.recognizer.RecognizeFood(ctx, image)
	if err != nil {
		uc.l.Errorf(ctx, "recognizeFoods: %v", err)
		return []model.DetectedFood{}
	}

	foods := make([]model.DetectedFood, 0, len(concepts))
	for _, c := range concepts {
		foods = append(foods, model.DetectedFood{Name: c.Name, Confidence: c.Confidence})
	}
	return foods
}
