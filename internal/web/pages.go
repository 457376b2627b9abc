package web

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nlefevre/biosite/internal/domain"
	"github.com/nlefevre/biosite/internal/service"
	"github.com/nlefevre/biosite/internal/store"
	"github.com/nlefevre/biosite/pkg/httpx"
	"github.com/nlefevre/biosite/pkg/slogx"
)

// PagesHandler serves the public pages: home, profiles and static assets.
type PagesHandler struct {
	Profiles  *service.ProfileService
	Logger    *slog.Logger
	StaticDir string
}

type homeData struct {
	Username string
}

type profileData struct {
	Username string
	Bio      string
	Style    domain.Style
}

// HandleHome renders the home page with identity-aware navigation.
func (h *PagesHandler) HandleHome(w http.ResponseWriter, req *http.Request) {
	httpx.NoCache(w)
	render(w, h.Logger, "home", homeData{Username: identityFrom(req.Context())})
}

// HandleProfile renders the public page of a username, with the account's
// colour pair (or the defaults).
func (h *PagesHandler) HandleProfile(w http.ResponseWriter, req *http.Request) {
	username := req.PathValue("username")

	account, err := h.Profiles.Get(req.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteText(w, http.StatusNotFound, "Page non trouvée")
			return
		}
		slogx.FromContext(req.Context()).Error("failed to load profile", "error", err)
		httpx.WriteText(w, http.StatusInternalServerError, "Erreur interne")
		return
	}

	render(w, h.Logger, "profile", profileData{
		Username: account.Username,
		Bio:      account.Bio,
		Style:    account.EffectiveStyle(),
	})
}

// HandleStylesheet serves the site stylesheet from the static directory.
func (h *PagesHandler) HandleStylesheet(w http.ResponseWriter, req *http.Request) {
	path := filepath.Join(h.StaticDir, "styles.css")
	if _, err := os.Stat(path); err != nil {
		httpx.WriteText(w, http.StatusNotFound, "Not found")
		return
	}
	http.ServeFile(w, req, path)
}

// HandleNotFound answers every path no other route claimed.
func (h *PagesHandler) HandleNotFound(w http.ResponseWriter, req *http.Request) {
	httpx.WriteText(w, http.StatusNotFound, "Not found")
}
