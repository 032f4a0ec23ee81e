package usecase

import (
	"context"
	"encoding/json"

	"nutrition-agent/internal/model"
	"nutrition-agent/internal/nutrition"
	"nutrition-agent/pkg/openaichat"
)

const (
	intentTemperature = 0.3
	intentMaxTokens   = 800
)

// Classify maps one user message onto the operation catalog. Intent
// classification is advisory, not safety-critical: on any upstream or
// parse failure it falls open to the chat intent instead of erroring the
// request.
func (uc *implUseCase) Classify(ctx context.Context, message string, images []string, history []model.ConversationTurn) model.IntentAnalysis {
	prompt := buildIntentContext(message, len(images), history)

	raw, err := uc.llm.CompleteText(ctx, openaichat.TextRequest{
		Prompt:       prompt,
		SystemPrompt: AgentSystemPrompt,
		Model:        uc.intentModel,
		MaxTokens:    intentMaxTokens,
		Temperature:  intentTemperature,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Classify: LLM request failed: %v", err)
		return chatFallback()
	}

	cleaned := sanitizeJSONResponse(raw)

	var analysis model.IntentAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		uc.l.Errorf(ctx, "Classify: failed to parse LLM response. Raw=%q Cleaned=%q", raw, cleaned)
		return chatFallback()
	}

	if !nutrition.ValidOperation(analysis.Intent) {
		uc.l.Warnf(ctx, "Classify: LLM proposed unknown intent %q, falling back to chat", analysis.Intent)
		return chatFallback()
	}

	if analysis.SuggestedParams == nil {
		analysis.SuggestedParams = map[string]any{}
	}

	return analysis
}

// chatFallback is the fail-open default: free-form chat at half confidence.
func chatFallback() model.IntentAnalysis {
	return model.IntentAnalysis{
		Intent:             nutrition.OpChat,
		Confidence:         0.5,
		SuggestedParams:    map[string]any{},
		Explanation:        "Không thể phân tích ý định, chuyển sang chat thông thường",
		AlternativeActions: []string{},
		MissingInfo:        []string{},
		NextSuggestions:    []string{},
	}
}
