package web

import (
	"log/slog"
	"net/http"

	"github.com/nlefevre/biosite/internal/domain"
	"github.com/nlefevre/biosite/internal/service"
	"github.com/nlefevre/biosite/pkg/httpx"
	"github.com/nlefevre/biosite/pkg/slogx"
)

// DashboardHandler serves the authenticated account pages: the bio editor
// and the colour customisation form.
type DashboardHandler struct {
	Profiles *service.ProfileService
	Logger   *slog.Logger
}

type dashboardData struct {
	Username string
	Bio      string
}

type customiseData struct {
	Username string
	Style    domain.Style
}

// HandleDashboard renders the bio editor for the logged-in account.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, req *http.Request) {
	username, ok := requireLogin(w, req)
	if !ok {
		return
	}

	account, err := h.Profiles.Get(req.Context(), username)
	if err != nil {
		slogx.FromContext(req.Context()).Error("failed to load account", "error", err)
		httpx.WriteText(w, http.StatusInternalServerError, "Erreur interne")
		return
	}

	httpx.NoCache(w)
	render(w, h.Logger, "dashboard", dashboardData{Username: username, Bio: account.Bio})
}

// HandleUpdate overwrites the bio and sends the user back to the editor.
// A missing field stores an empty bio.
func (h *DashboardHandler) HandleUpdate(w http.ResponseWriter, req *http.Request) {
	username, ok := requireLogin(w, req)
	if !ok {
		return
	}

	if err := req.ParseForm(); err != nil {
		httpx.WriteText(w, http.StatusBadRequest, "Champs manquants")
		return
	}

	if err := h.Profiles.UpdateBio(req.Context(), username, req.PostFormValue("bio")); err != nil {
		slogx.FromContext(req.Context()).Error("failed to update bio", "error", err)
		httpx.WriteText(w, http.StatusInternalServerError, "Erreur interne")
		return
	}

	http.Redirect(w, req, "/dashboard", http.StatusFound)
}

// HandleCustomise renders the colour form pre-filled with the current pair.
func (h *DashboardHandler) HandleCustomise(w http.ResponseWriter, req *http.Request) {
	username, ok := requireLogin(w, req)
	if !ok {
		return
	}

	account, err := h.Profiles.Get(req.Context(), username)
	if err != nil {
		slogx.FromContext(req.Context()).Error("failed to load account", "error", err)
		httpx.WriteText(w, http.StatusInternalServerError, "Erreur interne")
		return
	}

	httpx.NoCache(w)
	render(w, h.Logger, "customise", customiseData{
		Username: username,
		Style:    account.EffectiveStyle(),
	})
}

// HandleCustomiseUpdate stores the submitted colour pair; empty values fall
// back to the defaults in the service.
func (h *DashboardHandler) HandleCustomiseUpdate(w http.ResponseWriter, req *http.Request) {
	username, ok := requireLogin(w, req)
	if !ok {
		return
	}

	if err := req.ParseForm(); err != nil {
		httpx.WriteText(w, http.StatusBadRequest, "Champs manquants")
		return
	}

	style := domain.Style{
		Background: req.PostFormValue("bgColor"),
		Text:       req.PostFormValue("textColor"),
	}
	if err := h.Profiles.UpdateStyle(req.Context(), username, style); err != nil {
		slogx.FromContext(req.Context()).Error("failed to update style", "error", err)
		httpx.WriteText(w, http.StatusInternalServerError, "Erreur interne")
		return
	}

	http.Redirect(w, req, "/customise", http.StatusFound)
}
