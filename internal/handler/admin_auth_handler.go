package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/pkg/auth"
)

// AdminAuthConfig carries the credentials for the single admin login.
type AdminAuthConfig struct {
	Password      string
	SessionSecret []byte
	// SecureCookie is false only for local plain-HTTP development.
	SecureCookie bool
}

// AdminAuthHandler issues and clears the admin session cookie.
type AdminAuthHandler struct {
	cfg AdminAuthConfig
}

func NewAdminAuthHandler(cfg AdminAuthConfig) *AdminAuthHandler {
	return &AdminAuthHandler{cfg: cfg}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if !auth.CheckPassword(req.Password, h.cfg.Password) {
		slog.Warn("admin login rejected", "remote_addr", r.RemoteAddr)
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_credentials"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    auth.CreateAdminToken(h.cfg.SessionSecret),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
}

// Logout handles POST /api/admin/logout.
func (h *AdminAuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
}
