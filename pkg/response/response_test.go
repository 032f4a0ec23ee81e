package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"nutrition-agent/pkg/response"
)

func record(handle func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handle(c)
	return w
}

func errBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrResp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return body.Error
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.OK(c, gin.H{"success": true, "total": 2})
	})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Payload is flat, not wrapped in a data envelope.
	if body["success"] != true || body["total"] != float64(2) {
		t.Errorf("body = %v", body)
	}
}

func TestErrorResponses(t *testing.T) {
	t.Run("BadRequest", func(t *testing.T) {
		w := record(func(c *gin.Context) { response.BadRequest(c, "Chưa có ảnh") })
		if w.Code != http.StatusBadRequest || errBody(t, w) != "Chưa có ảnh" {
			t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		w := record(func(c *gin.Context) { response.NotFound(c, response.NotFoundMessage) })
		if w.Code != http.StatusNotFound || errBody(t, w) != response.NotFoundMessage {
			t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})

	t.Run("InternalError with message", func(t *testing.T) {
		w := record(func(c *gin.Context) { response.InternalError(c, errors.New("boom")) })
		if w.Code != http.StatusInternalServerError || errBody(t, w) != "boom" {
			t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})

	t.Run("InternalError nil falls back", func(t *testing.T) {
		w := record(func(c *gin.Context) { response.InternalError(c, nil) })
		if errBody(t, w) != response.DefaultErrorMessage {
			t.Errorf("body = %s", w.Body.String())
		}
	})
}
