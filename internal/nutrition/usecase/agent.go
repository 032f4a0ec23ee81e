package usecase

import (
	"context"
	"fmt"
	"strings"

	"nutrition-agent/internal/model"
	"nutrition-agent/internal/nutrition"
	"nutrition-agent/pkg/openaichat"
)

// Canned follow-up suggestions per operation outcome.
var (
	analyzeSuggestions = []string{
		"💡 Bạn có muốn so sánh với món khác không?",
		"📊 Hoặc tôi có thể tạo thực đơn tuần dựa trên món này?",
		"🍽️ Muốn biết cách làm món này tốt hơn cho sức khỏe?",
	}
	suggestionSuggestions = []string{
		"📅 Bạn có muốn tôi lập thực đơn cả tuần không?",
		"📖 Hoặc tôi có thể đưa công thức chi tiết?",
		"🎯 Muốn điều chỉnh theo mục tiêu cụ thể?",
	}
	defaultSuggestions = []string{
		"🤔 Bạn có thể cho tôi biết thêm chi tiết không?",
		"📸 Hoặc gửi ảnh để tôi phân tích chi tiết hơn?",
	}
)

// ProcessMessage is the agent pipeline: classify, resolve parameters
// against the stored profile, dispatch unless information is missing, and
// log both turns to the session.
func (uc *implUseCase) ProcessMessage(ctx context.Context, input nutrition.AgentInput) (nutrition.AgentOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nutrition.AgentOutput{}, nutrition.ErrEmptyMessage
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uc.store.NewSessionID()
	}
	history := uc.store.History(sessionID)

	analysis := uc.Classify(ctx, message, input.Images, history)

	params := nutrition.Params(analysis.SuggestedParams)
	uc.backfillFromProfile(ctx, params, input.UserID)
	injectImages(params, analysis.Intent, input.Images)
	if analysis.Intent == nutrition.OpChat && !params.Has("message") {
		params["message"] = message
	}

	var result nutrition.OperationResult
	if input.AutoExecute {
		if len(analysis.MissingInfo) == 0 {
			result = uc.Dispatch(ctx, analysis.Intent, params)
		} else {
			result = nutrition.OperationResult{
				"status":  "need_more_info",
				"message": fmt.Sprintf("Tôi cần thêm thông tin: %s", strings.Join(analysis.MissingInfo, ", ")),
			}
		}
	}

	uc.store.AppendTurns(sessionID,
		model.ConversationTurn{
			Role:      model.RoleUser,
			Content:   message,
			HasImages: len(input.Images) > 0,
		},
		model.ConversationTurn{
			Role:   model.RoleAssistant,
			Intent: analysis.Intent,
			Result: result,
		},
	)

	return nutrition.AgentOutput{
		SessionID:   sessionID,
		Intent:      analysis,
		Result:      result,
		Suggestions: followUpSuggestions(analysis, result),
		Executed:    input.AutoExecute && result != nil,
	}, nil
}

// SuggestOnly runs the classifier and renders the parameter checklist
// without dispatching anything.
func (uc *implUseCase) SuggestOnly(ctx context.Context, input nutrition.SuggestInput) (nutrition.SuggestOutput, error) {
	var history []model.ConversationTurn
	if input.SessionID != "" {
		history = uc.store.History(input.SessionID)
	}

	analysis := uc.Classify(ctx, input.Message, input.Images, history)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🤖 **Tôi hiểu bạn muốn: %s**\n\n", analysis.Explanation))
	sb.WriteString(fmt.Sprintf("Tôi đề xuất dùng chức năng: **%s**\n", analysis.Intent))
	sb.WriteString(fmt.Sprintf("Độ tự tin: %d%%\n\n", int(analysis.Confidence*100)))
	sb.WriteString("📋 **Các bước thực hiện:**")

	if spec, ok := nutrition.FindOperation(analysis.Intent); ok {
		for _, required := range spec.Required {
			status := "❌ Cần bổ sung"
			if _, present := analysis.SuggestedParams[required]; present {
				status = "✅ Đã có"
			}
			sb.WriteString(fmt.Sprintf("\n- %s: %s", required, status))
		}
	}

	if len(analysis.AlternativeActions) > 0 {
		sb.WriteString("\n\n💡 **Hoặc bạn có thể:**")
		alternatives := analysis.AlternativeActions
		if len(alternatives) > 3 {
			alternatives = alternatives[:3]
		}
		for _, alt := range alternatives {
			if altSpec, ok := nutrition.FindOperation(alt); ok {
				sb.WriteString(fmt.Sprintf("\n- %s: %s", alt, altSpec.Description))
			}
		}
	}

	return nutrition.SuggestOutput{
		Intent:     analysis,
		Message:    sb.String(),
		CanExecute: len(analysis.MissingInfo) == 0,
	}, nil
}

const chatHistoryWindow = 10

// Chat is the plain conversation path: persona plus the session's recent
// turns, no intent routing.
func (uc *implUseCase) Chat(ctx context.Context, input nutrition.ChatInput) (nutrition.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nutrition.ChatOutput{}, nutrition.ErrEmptyMessage
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uc.store.NewSessionID()
	}

	reply, err := uc.llm.CompleteText(ctx, openaichat.TextRequest{
		Prompt:       message,
		SystemPrompt: AgentSystemPrompt,
		History:      chatHistory(uc.store.History(sessionID)),
		Model:        uc.intentModel,
		MaxTokens:    1500,
	})
	if err != nil {
		return nutrition.ChatOutput{}, err
	}

	uc.store.AppendTurns(sessionID,
		model.ConversationTurn{Role: model.RoleUser, Content: message},
		model.ConversationTurn{Role: model.RoleAssistant, Content: reply},
	)

	return nutrition.ChatOutput{Reply: reply, SessionID: sessionID}, nil
}

// chatHistory converts the last turns into model context. Only
// content-bearing turns go to the model; agent turns that carry structured
// results instead of text are skipped.
func chatHistory(turns []model.ConversationTurn) []openaichat.Message {
	if len(turns) > chatHistoryWindow {
		turns = turns[len(turns)-chatHistoryWindow:]
	}

	messages := make([]openaichat.Message, 0, len(turns))
	for _, t := range turns {
		if t.Content == "" {
			continue
		}
		messages = append(messages, openaichat.Message{Role: t.Role, Content: t.Content})
	}
	return messages
}

// backfillFromProfile fills health_condition and target_calories from the
// stored profile when the classifier did not propose them.
func (uc *implUseCase) backfillFromProfile(ctx context.Context, params nutrition.Params, userID string) {
	if userID == "" {
		return
	}
	profile, ok := uc.store.Profile(userID)
	if !ok {
		return
	}

	if !params.Has("health_condition") {
		condition := profile.HealthCondition
		if condition == "" {
			condition = nutrition.DefaultHealthCondition
		}
		params["health_condition"] = condition
	}
	if !params.Has("target_calories") {
		target := profile.TargetCalories
		if target == 0 {
			target = nutrition.DefaultTargetCalories
		}
		params["target_calories"] = target
	}
}

// injectImages places attached images under the parameter name the chosen
// operation expects.
func injectImages(params nutrition.Params, intent string, images []string) {
	if len(images) == 0 {
		return
	}
	switch intent {
	case nutrition.OpAnalyzeFood, nutrition.OpQuickScan:
		params["image"] = images[0]
	case nutrition.OpCompareFoods, nutrition.OpTrackCalories:
		params["images"] = images
	}
}

// followUpSuggestions picks the canned next-step strings for the response.
func followUpSuggestions(analysis model.IntentAnalysis, result nutrition.OperationResult) []string {
	if result != nil && !result.IsError() {
		switch analysis.Intent {
		case nutrition.OpAnalyzeFood:
			return analyzeSuggestions
		case nutrition.OpMealSuggestion:
			return suggestionSuggestions
		}
	}
	if len(analysis.NextSuggestions) > 0 {
		return analysis.NextSuggestions
	}
	return defaultSuggestions
}
