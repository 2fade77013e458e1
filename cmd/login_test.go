// ABOUTME: Tests for the login and logout commands
// ABOUTME: Verifies token persistence, session output, and failure paths

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// loginTestServer serves the token and profile endpoints.
func loginTestServer(t *testing.T, valid bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token/":
			if !valid {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"detail": "No active account found with the given credentials",
				})
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"access": "A1", "refresh": "R1"})
		case "/users/me/":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id": 1, "username": "ana", "email": "ana@example.com",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestLoginCommand_Success(t *testing.T) {
	server := loginTestServer(t, true)
	defer server.Close()

	dir := t.TempDir()
	t.Setenv("MILHAS_CONFIG_DIR", dir)
	t.Setenv("MILHAS_API_URL", "")
	oldURL, oldUser, oldPass := apiURL, loginUsername, loginPassword
	apiURL, loginUsername, loginPassword = server.URL, "ana", "secret"
	defer func() { apiURL, loginUsername, loginPassword = oldURL, oldUser, oldPass }()

	var buf bytes.Buffer
	code := runLogin(context.Background(), &buf)

	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("ana")) {
		t.Errorf("expected username in output, got %q", buf.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "tokens.json"))
	if err != nil {
		t.Fatalf("expected tokens.json to exist: %v", err)
	}
	var pair map[string]string
	if err := json.Unmarshal(data, &pair); err != nil {
		t.Fatalf("tokens.json is not valid JSON: %v", err)
	}
	if pair["access"] != "A1" || pair["refresh"] != "R1" {
		t.Errorf("expected persisted pair A1/R1, got %v", pair)
	}
}

func TestLoginCommand_InvalidCredentials(t *testing.T) {
	server := loginTestServer(t, false)
	defer server.Close()

	dir := t.TempDir()
	t.Setenv("MILHAS_CONFIG_DIR", dir)
	t.Setenv("MILHAS_API_URL", "")
	oldURL, oldUser, oldPass := apiURL, loginUsername, loginPassword
	apiURL, loginUsername, loginPassword = server.URL, "ana", "wrong"
	defer func() { apiURL, loginUsername, loginPassword = oldURL, oldUser, oldPass }()

	var buf bytes.Buffer
	code := runLogin(context.Background(), &buf)

	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !bytes.Contains(buf.Bytes(), []byte("invalid username or password")) {
		t.Errorf("expected credential error, got %q", buf.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "tokens.json")); !os.IsNotExist(err) {
		t.Error("expected no tokens persisted after failed login")
	}
}

func TestLogoutCommand_Idempotent(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MILHAS_CONFIG_DIR", dir)
	t.Setenv("MILHAS_API_URL", "")
	oldURL := apiURL
	apiURL = "http://127.0.0.1:1/api"
	defer func() { apiURL = oldURL }()

	// Seed a token file, then log out twice.
	if err := os.WriteFile(filepath.Join(dir, "tokens.json"),
		[]byte(`{"access":"A1","refresh":"R1"}`), 0600); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		var buf bytes.Buffer
		if code := runLogout(context.Background(), &buf); code != 0 {
			t.Fatalf("logout %d: expected exit 0, got %d", i, code)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "tokens.json")); !os.IsNotExist(err) {
		t.Error("expected token file removed after logout")
	}
}
