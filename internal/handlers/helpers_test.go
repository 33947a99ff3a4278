package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/auth"
	"fintrack/internal/budget"
	"fintrack/internal/config"
	"fintrack/internal/services"
	"fintrack/internal/websocket"

	"github.com/rs/zerolog"
)

const testPassphrase = "correct horse"

type testAPI struct {
	handler *Handler
	routes  http.Handler
	finance *services.FinanceManager
	budgets *budget.Manager
	hub     *websocket.Hub
	token   string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	return newTestAPIWithLogger(t, zerolog.Nop())
}

func newTestAPIWithLogger(t *testing.T, log zerolog.Logger) *testAPI {
	t.Helper()
	cfg := config.Config{
		AppEnv:          "test",
		Port:            "0",
		JWTSecret:       "secret",
		TokenTTL:        time.Minute,
		AllowedOrigins:  "*",
		HistoryPageSize: 10,
	}
	hash, err := auth.HashPassword(testPassphrase)
	if err != nil {
		t.Fatalf("failed to hash passphrase: %v", err)
	}
	hub := websocket.NewHub()
	finance := services.NewFinanceManager(services.WithBalanceHub(hub))
	budgets := budget.NewManager()
	handler := New(cfg, hash, finance, budgets, hub, log)
	token, err := auth.GenerateToken(cfg.JWTSecret, auth.OwnerSubject, time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return &testAPI{
		handler: handler,
		routes:  handler.Routes(),
		finance: finance,
		budgets: budgets,
		hub:     hub,
		token:   token,
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rr := httptest.NewRecorder()
	a.routes.ServeHTTP(rr, req)
	return rr
}

func decodeObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var payload []map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func expectStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rr.Code, rr.Body.String())
	}
}
