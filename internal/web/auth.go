package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nlefevre/biosite/internal/service"
	"github.com/nlefevre/biosite/pkg/httpx"
	"github.com/nlefevre/biosite/pkg/slogx"
)

// AuthHandler serves the registration, login and logout endpoints.
type AuthHandler struct {
	Accounts *service.AccountService
	Logger   *slog.Logger
}

// HandleRegisterForm renders the registration form.
func (h *AuthHandler) HandleRegisterForm(w http.ResponseWriter, req *http.Request) {
	render(w, h.Logger, "register", nil)
}

// HandleLoginForm renders the login form.
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, req *http.Request) {
	render(w, h.Logger, "login", nil)
}

// HandleRegister processes a registration submission. Validation failures
// come back as a 400 with a plain-text message; success redirects home.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		httpx.WriteText(w, http.StatusBadRequest, "Champs manquants")
		return
	}

	err := h.Accounts.Register(req.Context(),
		req.PostFormValue("username"),
		req.PostFormValue("password"),
		httpx.ClientIP(req),
	)
	switch {
	case err == nil:
		http.Redirect(w, req, "/", http.StatusFound)
	case errors.Is(err, service.ErrDuplicateIP):
		httpx.WriteText(w, http.StatusBadRequest, "Cette IP a déjà créé un compte.")
	case errors.Is(err, service.ErrMissingField):
		httpx.WriteText(w, http.StatusBadRequest, "Champs manquants")
	case errors.Is(err, service.ErrDuplicateUsername):
		httpx.WriteText(w, http.StatusBadRequest, "Utilisateur déjà existant")
	default:
		slogx.FromContext(req.Context()).Error("registration failed", "error", err)
		httpx.WriteText(w, http.StatusInternalServerError, "Erreur interne")
	}
}

// HandleLogin processes a login submission. Success sets the session cookie
// and redirects home; any credential failure is the same 400.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		httpx.WriteText(w, http.StatusBadRequest, "Identifiants invalides")
		return
	}

	token, err := h.Accounts.Login(req.Context(),
		req.PostFormValue("username"),
		req.PostFormValue("password"),
	)
	switch {
	case err == nil:
		// HttpOnly and nothing else: no Secure, no SameSite, no expiry.
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    token,
			HttpOnly: true,
		})
		http.Redirect(w, req, "/", http.StatusFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteText(w, http.StatusBadRequest, "Identifiants invalides")
	default:
		slogx.FromContext(req.Context()).Error("login failed", "error", err)
		httpx.WriteText(w, http.StatusInternalServerError, "Erreur interne")
	}
}

// HandleLogout clears the session, expires the cookie and redirects home.
// Logging out without a session (or twice) behaves the same as once.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, req *http.Request) {
	if token := tokenFrom(req.Context()); token != "" {
		if err := h.Accounts.Logout(req.Context(), token); err != nil {
			slogx.FromContext(req.Context()).Error("logout failed", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, req, "/", http.StatusFound)
}
