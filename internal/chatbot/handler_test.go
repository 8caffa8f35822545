package chatbot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/llm"
)

func newTestRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(NewService(client)).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestAskEndpoint(t *testing.T) {
	router := newTestRouter(llm.Func(func(ctx context.Context, prompt string) (string, error) {
		if !strings.Contains(prompt, "How do I improve my resume?") {
			t.Errorf("prompt missing question: %q", prompt)
		}
		return "## Advice\nKeep it concise.", nil
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chatbot/ask",
		strings.NewReader(`{"question": "How do I improve my resume?"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Answer == "" {
		t.Fatal("empty answer")
	}
}

func TestAskEndpointMissingQuestion(t *testing.T) {
	router := newTestRouter(llm.Disabled{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chatbot/ask", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAskEndpointModelFailure(t *testing.T) {
	router := newTestRouter(llm.Func(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("unavailable")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chatbot/ask",
		strings.NewReader(`{"question": "anything"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestResourcesEndpoint(t *testing.T) {
	router := newTestRouter(llm.Disabled{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chatbot/resources", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := payload["resume_tips"]; !ok {
		t.Fatalf("payload = %v", payload)
	}
}
