package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"prompt-designer/account"
	"prompt-designer/api"
	"prompt-designer/auth"
	"prompt-designer/enhance"
	"prompt-designer/generate"
)

// stubEnhancer returns a fixed result or error.
type stubEnhancer struct {
	out string
	err error
}

func (s *stubEnhancer) Enhance(_ context.Context, _ string) (string, error) {
	return s.out, s.err
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newTestServerWithEnhancer(t, nil)
}

func newTestServerWithEnhancer(t *testing.T, enhancer enhance.Enhancer) *httptest.Server {
	t.Helper()
	store := account.NewFileStore(t.TempDir() + "/users.json")
	dir := account.NewDirectory(store, zerolog.Nop())
	tokens := auth.NewTokens("test-secret")
	gen := generate.NewService(enhancer, time.Second, zerolog.Nop())
	srv := httptest.NewServer(api.RegisterRoutes(dir, tokens, gen, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

// registerAccount creates an account and returns its bearer token.
func registerAccount(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()
	resp := postJSON(t, srv, "", "/api/auth/register", map[string]string{
		"email":    email,
		"password": "password123",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	if body.Token == "" {
		t.Fatal("register: empty token")
	}
	return body.Token
}

func doJSON(t *testing.T, srv *httptest.Server, method, token, path string, payload any) *http.Response {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req, err := http.NewRequest(method, srv.URL+path, &body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func postJSON(t *testing.T, srv *httptest.Server, token, path string, payload any) *http.Response {
	t.Helper()
	return doJSON(t, srv, http.MethodPost, token, path, payload)
}

func getJSON(t *testing.T, srv *httptest.Server, token, path string) *http.Response {
	t.Helper()
	return doJSON(t, srv, http.MethodGet, token, path, nil)
}
