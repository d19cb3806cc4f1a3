package faq_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"offr-backend/internal/bootstrap"
	"offr-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		Env:             "dev",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

func TestFAQAskWithoutProviderServesFallback(t *testing.T) {
	router := newTestRouter(t)

	payload := []byte(`{"question": "What does firm choice mean?"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/faq/ask", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Answer            string   `json:"answer"`
		FollowUpQuestions []string `json:"follow_up_questions"`
		Fallback          bool     `json:"_fallback"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Fallback || body.Answer == "" {
		t.Fatalf("expected static fallback answer, got %+v", body)
	}
}

func TestFAQAskRequiresQuestion(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/faq/ask", bytes.NewReader([]byte(`{"question": "  "}`)))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
