package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/portfolio/backend/pkg/auth"
)

func newAuthHandler() *AdminAuthHandler {
	return NewAdminAuthHandler(AdminAuthConfig{
		Password:      "hunter2",
		SessionSecret: auth.SessionSecretBytes("test-secret"),
	})
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName() {
			return c
		}
	}
	return nil
}

func TestLogin_CorrectPasswordSetsSessionCookie(t *testing.T) {
	h := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"hunter2"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c := sessionCookie(rec)
	if c == nil {
		t.Fatal("expected session cookie to be set")
	}
	if err := auth.VerifyAdminToken(c.Value, auth.SessionSecretBytes("test-secret")); err != nil {
		t.Errorf("expected a verifiable token in the cookie, got %v", err)
	}
	if !c.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"nope"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if sessionCookie(rec) != nil {
		t.Error("expected no session cookie on failed login")
	}
}

func TestLogin_UnsetPasswordRejectsEverything(t *testing.T) {
	h := NewAdminAuthHandler(AdminAuthConfig{
		Password:      "",
		SessionSecret: auth.SessionSecretBytes("test-secret"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":""}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader("{oops"))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "invalid_json" {
		t.Errorf("expected invalid_json, got %q", resp["error"])
	}
}

func TestLogout_ClearsSessionCookie(t *testing.T) {
	h := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c := sessionCookie(rec)
	if c == nil {
		t.Fatal("expected expiring cookie to be set")
	}
	if c.MaxAge >= 0 {
		t.Errorf("expected MaxAge < 0, got %d", c.MaxAge)
	}
	if c.Value != "" {
		t.Errorf("expected empty cookie value, got %q", c.Value)
	}
}
