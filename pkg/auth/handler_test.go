package auth

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/davrd/gatekit/pkg/providers"
	"github.com/sirupsen/logrus"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	github, err := providers.GitHub(providers.OAuthOptions{
		ClientID:     "cid",
		ClientSecret: "very-secret",
	})
	if err != nil {
		t.Fatalf("failed to build github descriptor: %v", err)
	}
	collection, err := providers.NewCollection(github)
	if err != nil {
		t.Fatalf("failed to assemble collection: %v", err)
	}

	testLogger := logrus.New()
	testLogger.SetOutput(&bytes.Buffer{}) // Discard output during tests

	return NewHandler(&Config{BaseURL: "https://app.test", Providers: collection}, testLogger)
}

func TestHandleProviders(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/auth/providers", nil)
	w := httptest.NewRecorder()
	handler.Router().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Status string                  `json:"status"`
		Data   []providers.AppProvider `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("expected success status, got %q", resp.Status)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 provider, got %d", len(resp.Data))
	}
	if resp.Data[0].SigninURL != "https://app.test/signin/github" {
		t.Errorf("unexpected signinUrl: %q", resp.Data[0].SigninURL)
	}
}

func TestHandleProvidersOmitsSecrets(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/auth/providers", nil)
	w := httptest.NewRecorder()
	handler.Router().ServeHTTP(w, req)

	if strings.Contains(w.Body.String(), "very-secret") {
		t.Error("response body leaks the client secret")
	}
	if strings.Contains(w.Body.String(), "clientSecret") {
		t.Error("response body exposes a clientSecret field")
	}
}
