package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"nutrition-agent/internal/model"
	"nutrition-agent/internal/nutrition"
	nutritionHTTP "nutrition-agent/internal/nutrition/delivery/http"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	agentOut    nutrition.AgentOutput
	agentErr    error
	suggestOut  nutrition.SuggestOutput
	workflowOut nutrition.WorkflowOutput
	workflowErr error
	chatOut     nutrition.ChatOutput
	chatErr     error
	dispatchRes nutrition.OperationResult
	profileID   string
	profile     model.UserProfile
	profileErr  error

	dispatchedOp     string
	dispatchedParams nutrition.Params
	agentIn          nutrition.AgentInput
	workflowIn       nutrition.WorkflowInput
	chatCalls        int
}

func (m *mockUseCase) ProcessMessage(ctx context.Context, input nutrition.AgentInput) (nutrition.AgentOutput, error) {
	m.agentIn = input
	return m.agentOut, m.agentErr
}
func (m *mockUseCase) SuggestOnly(ctx context.Context, input nutrition.SuggestInput) (nutrition.SuggestOutput, error) {
	return m.suggestOut, nil
}
func (m *mockUseCase) RunWorkflow(ctx context.Context, input nutrition.WorkflowInput) (nutrition.WorkflowOutput, error) {
	m.workflowIn = input
	return m.workflowOut, m.workflowErr
}
func (m *mockUseCase) Chat(ctx context.Context, input nutrition.ChatInput) (nutrition.ChatOutput, error) {
	m.chatCalls++
	return m.chatOut, m.chatErr
}
func (m *mockUseCase) Dispatch(ctx context.Context, operation string, params nutrition.Params) nutrition.OperationResult {
	m.dispatchedOp = operation
	m.dispatchedParams = params
	return m.dispatchRes
}
func (m *mockUseCase) Classify(ctx context.Context, message string, images []string, history []model.ConversationTurn) model.IntentAnalysis {
	return model.IntentAnalysis{}
}
func (m *mockUseCase) SaveProfile(ctx context.Context, input nutrition.SaveProfileInput) (string, error) {
	return m.profileID, nil
}
func (m *mockUseCase) GetProfile(ctx context.Context, userID string) (model.UserProfile, error) {
	return m.profile, m.profileErr
}

func newRouter(uc nutrition.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	nutritionHTTP.RegisterRoutes(r.Group("/api"), nutritionHTTP.New(&mockLogger{}, uc))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func TestAgentRoute(t *testing.T) {
	t.Run("Empty message is 400", func(t *testing.T) {
		r := newRouter(&mockUseCase{})

		w, body := doJSON(t, r, http.MethodPost, "/api/agent", gin.H{"message": "  "})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if body["error"] != nutrition.ErrEmptyMessage.Error() {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("Success envelope", func(t *testing.T) {
		uc := &mockUseCase{agentOut: nutrition.AgentOutput{
			SessionID:   "s-1",
			Intent:      model.IntentAnalysis{Intent: "meal_suggestion", Confidence: 0.9},
			Result:      nutrition.OperationResult{"suggestion": "cá hấp"},
			Suggestions: []string{"📅 tiếp?"},
			Executed:    true,
		}}
		r := newRouter(uc)

		w, body := doJSON(t, r, http.MethodPost, "/api/agent", gin.H{"message": "tối ăn gì"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body["success"] != true || body["session_id"] != "s-1" || body["executed"] != true {
			t.Errorf("body = %v", body)
		}
	})
}

func TestCompareFoodsRoute(t *testing.T) {
	t.Run("One image is 400", func(t *testing.T) {
		r := newRouter(&mockUseCase{})

		w, body := doJSON(t, r, http.MethodPost, "/api/compare-foods", gin.H{
			"images": []string{"aW1n"},
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if body["error"] != nutrition.ErrNotEnoughImages.Error() {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("Two images dispatch", func(t *testing.T) {
		uc := &mockUseCase{dispatchRes: nutrition.OperationResult{"comparison": "món 1 tốt hơn"}}
		r := newRouter(uc)

		w, body := doJSON(t, r, http.MethodPost, "/api/compare-foods", gin.H{
			"images": []string{"aW1nMQ==", "aW1nMg=="},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if uc.dispatchedOp != nutrition.OpCompareFoods {
			t.Errorf("dispatched %q", uc.dispatchedOp)
		}
		if body["success"] != true || body["comparison"] != "món 1 tốt hơn" {
			t.Errorf("body = %v", body)
		}
	})
}

func TestQuickScanRoute(t *testing.T) {
	t.Run("Missing image is 400", func(t *testing.T) {
		r := newRouter(&mockUseCase{})

		w, _ := doJSON(t, r, http.MethodPost, "/api/quick-scan", gin.H{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Error variant is 400", func(t *testing.T) {
		uc := &mockUseCase{dispatchRes: nutrition.OperationResult{"error": nutrition.ErrNoRecognition.Error()}}
		r := newRouter(uc)

		w, body := doJSON(t, r, http.MethodPost, "/api/quick-scan", gin.H{"image": "aW1n"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if body["error"] != nutrition.ErrNoRecognition.Error() {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("Success flattens the result", func(t *testing.T) {
		uc := &mockUseCase{dispatchRes: nutrition.OperationResult{
			"detected_foods": []any{gin.H{"name": "pho", "confidence": 97.25}},
			"total":          1,
		}}
		r := newRouter(uc)

		w, body := doJSON(t, r, http.MethodPost, "/api/quick-scan", gin.H{"image": "aW1n"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body["success"] != true || body["total"] != float64(1) {
			t.Errorf("body = %v", body)
		}
	})
}

func TestTrackCaloriesRoute(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w, body := doJSON(t, r, http.MethodPost, "/api/track-calories", gin.H{"images": []string{}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if body["error"] != nutrition.ErrNoImages.Error() {
		t.Errorf("body = %v", body)
	}
}

func TestMalformedBody(t *testing.T) {
	r := newRouter(&mockUseCase{})

	for _, path := range []string{"/api/analyze-food", "/api/chat", "/api/quick-scan"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"message":`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode response %q: %v", w.Body.String(), err)
			}
			msg, _ := body["error"].(string)
			if !strings.Contains(msg, "Dữ liệu không hợp lệ") {
				t.Errorf("error = %q, want invalid-body message", msg)
			}
		})
	}
}

func TestMultiStepRoute(t *testing.T) {
	t.Run("Unknown workflow is 400", func(t *testing.T) {
		r := newRouter(&mockUseCase{workflowErr: nutrition.ErrUnknownWorkflow})

		w, _ := doJSON(t, r, http.MethodPost, "/api/agent/multi-step", gin.H{"workflow": "bogus"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Omitted workflow defaults to complete analysis", func(t *testing.T) {
		uc := &mockUseCase{workflowOut: nutrition.WorkflowOutput{
			Workflow: nutrition.WorkflowCompleteAnalysis,
			Steps:    []nutrition.WorkflowStep{},
			Summary:  "Đã hoàn thành 0 bước trong workflow 'complete_analysis'",
		}}
		r := newRouter(uc)

		w, _ := doJSON(t, r, http.MethodPost, "/api/agent/multi-step", gin.H{})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if uc.workflowIn.Workflow != nutrition.WorkflowCompleteAnalysis {
			t.Errorf("workflow = %q, want %q", uc.workflowIn.Workflow, nutrition.WorkflowCompleteAnalysis)
		}
	})

	t.Run("Steps pass through", func(t *testing.T) {
		r := newRouter(&mockUseCase{workflowOut: nutrition.WorkflowOutput{
			Workflow: "meal_planning",
			Steps: []nutrition.WorkflowStep{
				{Step: 1, Action: "meal_suggestion", Result: nutrition.OperationResult{"suggestion": "x"}},
			},
			Summary: "Đã hoàn thành 1 bước trong workflow 'meal_planning'",
		}})

		w, body := doJSON(t, r, http.MethodPost, "/api/agent/multi-step", gin.H{"workflow": "meal_planning"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		steps, ok := body["steps"].([]any)
		if !ok || len(steps) != 1 {
			t.Errorf("steps = %v", body["steps"])
		}
	})
}

func TestChatRoute(t *testing.T) {
	t.Run("Plain chat returns the reply", func(t *testing.T) {
		uc := &mockUseCase{chatOut: nutrition.ChatOutput{Reply: "chào bạn", SessionID: "s-9"}}
		r := newRouter(uc)

		w, body := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{"message": "xin chào"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body["reply"] != "chào bạn" || body["session_id"] != "s-9" {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("Agent mode goes through the agent pipeline", func(t *testing.T) {
		uc := &mockUseCase{agentOut: nutrition.AgentOutput{
			SessionID: "s-2",
			Result:    nutrition.OperationResult{"suggestion": "cá hấp"},
			Executed:  true,
		}}
		r := newRouter(uc)

		w, body := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{
			"message":   "tối ăn gì",
			"use_agent": true,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if uc.chatCalls != 0 {
			t.Errorf("chat calls = %d, want 0 in agent mode", uc.chatCalls)
		}
		if uc.agentIn.Message != "tối ăn gì" || !uc.agentIn.AutoExecute {
			t.Errorf("agent input = %+v", uc.agentIn)
		}
		if body["session_id"] != "s-2" || body["executed"] != true {
			t.Errorf("body = %v", body)
		}
	})
}

func TestProfileRoutes(t *testing.T) {
	t.Run("Save returns minted id", func(t *testing.T) {
		r := newRouter(&mockUseCase{profileID: "u-1"})

		w, body := doJSON(t, r, http.MethodPost, "/api/user/profile", gin.H{"name": "An"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body["user_id"] != "u-1" || body["message"] != "Đã lưu thông tin người dùng" {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("Unknown user is 404", func(t *testing.T) {
		r := newRouter(&mockUseCase{profileErr: nutrition.ErrProfileNotFound})

		w, body := doJSON(t, r, http.MethodGet, "/api/user/profile/nobody", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
		if body["error"] != nutrition.ErrProfileNotFound.Error() {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("Found profile is the bare object", func(t *testing.T) {
		r := newRouter(&mockUseCase{profile: model.UserProfile{Name: "An", TargetCalories: 1800}})

		w, body := doJSON(t, r, http.MethodGet, "/api/user/profile/u-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body["name"] != "An" || body["target_calories"] != float64(1800) {
			t.Errorf("body = %v", body)
		}
	})
}
