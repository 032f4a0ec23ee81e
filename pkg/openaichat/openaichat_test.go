package openaichat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutrition-agent/pkg/openaichat"
)

// fakeOpenAI captures the last chat completion request and answers with a
// fixed message.
func fakeOpenAI(t *testing.T, reply string, lastReq *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		*lastReq = req

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"role": "assistant", "content": reply}},
			},
		})
	}))
}

func newClient(t *testing.T, baseURL string) openaichat.IOpenAIChat {
	t.Helper()
	cl, err := openaichat.New(openaichat.Config{
		APIKey:  "test-key",
		BaseURL: baseURL + "/v1",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return cl
}

func messagesOf(t *testing.T, req map[string]any) []map[string]any {
	t.Helper()
	raw, ok := req["messages"].([]any)
	if !ok {
		t.Fatalf("messages missing: %v", req)
	}
	out := make([]map[string]any, 0, len(raw))
	for _, m := range raw {
		out = append(out, m.(map[string]any))
	}
	return out
}

func TestCompleteText(t *testing.T) {
	ctx := context.Background()

	t.Run("System prompt and history order", func(t *testing.T) {
		var lastReq map[string]any
		srv := fakeOpenAI(t, "  câu trả lời  ", &lastReq)
		defer srv.Close()

		reply, err := newClient(t, srv.URL).CompleteText(ctx, openaichat.TextRequest{
			Prompt:       "tối nay ăn gì",
			SystemPrompt: "Bạn là trợ lý dinh dưỡng",
			History: []openaichat.Message{
				{Role: "user", Content: "xin chào"},
				{Role: "assistant", Content: "chào bạn"},
			},
			Model:       "gpt-4o-mini",
			MaxTokens:   800,
			Temperature: 0.3,
		})
		if err != nil {
			t.Fatalf("CompleteText: %v", err)
		}
		if reply != "câu trả lời" {
			t.Errorf("reply = %q, want trimmed content", reply)
		}

		if lastReq["model"] != "gpt-4o-mini" {
			t.Errorf("model = %v, want gpt-4o-mini", lastReq["model"])
		}
		msgs := messagesOf(t, lastReq)
		if len(msgs) != 4 {
			t.Fatalf("messages = %d, want system + 2 history + prompt", len(msgs))
		}
		if msgs[0]["role"] != "system" || msgs[3]["content"] != "tối nay ăn gì" {
			t.Errorf("message order wrong: %v", msgs)
		}
	})

	t.Run("Defaults applied", func(t *testing.T) {
		var lastReq map[string]any
		srv := fakeOpenAI(t, "ok", &lastReq)
		defer srv.Close()

		if _, err := newClient(t, srv.URL).CompleteText(ctx, openaichat.TextRequest{Prompt: "hi"}); err != nil {
			t.Fatalf("CompleteText: %v", err)
		}
		if lastReq["model"] != openaichat.DefaultModel {
			t.Errorf("model = %v, want default", lastReq["model"])
		}
		if lastReq["max_tokens"] != float64(openaichat.DefaultMaxTokens) {
			t.Errorf("max_tokens = %v, want default", lastReq["max_tokens"])
		}
	})

	t.Run("Upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newClient(t, srv.URL).CompleteText(ctx, openaichat.TextRequest{Prompt: "hi"})
		if err == nil || !strings.Contains(err.Error(), "API call failed") {
			t.Errorf("err = %v, want wrapped API error", err)
		}
	})
}

func TestCompleteVision(t *testing.T) {
	ctx := context.Background()

	var lastReq map[string]any
	srv := fakeOpenAI(t, "nhiều rau, ít đạm", &lastReq)
	defer srv.Close()

	reply, err := newClient(t, srv.URL).CompleteVision(ctx, openaichat.VisionRequest{
		Prompt:    "phân tích món ăn",
		Images:    []string{"aW1nMQ==", "data:image/png;base64,aW1nMg=="},
		MaxTokens: 1500,
	})
	if err != nil {
		t.Fatalf("CompleteVision: %v", err)
	}
	if reply != "nhiều rau, ít đạm" {
		t.Errorf("reply = %q", reply)
	}

	msgs := messagesOf(t, lastReq)
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1 multi-part user message", len(msgs))
	}
	parts, ok := msgs[0]["content"].([]any)
	if !ok || len(parts) != 3 {
		t.Fatalf("content parts = %v, want text + 2 images", msgs[0]["content"])
	}

	second := parts[1].(map[string]any)["image_url"].(map[string]any)
	if second["url"] != "data:image/jpeg;base64,aW1nMQ==" {
		t.Errorf("image 1 url = %v, want data URL added", second["url"])
	}
	third := parts[2].(map[string]any)["image_url"].(map[string]any)
	if third["url"] != "data:image/jpeg;base64,aW1nMg==" {
		t.Errorf("image 2 url = %v, want prefix normalized", third["url"])
	}
}

func TestNormalizeImageURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"aGVsbG8=", "data:image/jpeg;base64,aGVsbG8="},
		{"data:image/jpeg;base64,aGVsbG8=", "data:image/jpeg;base64,aGVsbG8="},
		{"data:image/png;base64,aGVsbG8=", "data:image/jpeg;base64,aGVsbG8="},
	}
	for _, tc := range cases {
		if got := openaichat.NormalizeImageURL(tc.in); got != tc.want {
			t.Errorf("NormalizeImageURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConfigRequiresKey(t *testing.T) {
	if _, err := openaichat.New(openaichat.Config{}); err == nil {
		t.Error("expected error without APIKey")
	}
}
