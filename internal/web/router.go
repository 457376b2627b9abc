package web

import (
	"log/slog"
	"net/http"

	"github.com/nlefevre/biosite/internal/metrics"
	"github.com/nlefevre/biosite/internal/service"
	"github.com/nlefevre/biosite/internal/store"
	"github.com/nlefevre/biosite/pkg/httpx"
	"github.com/nlefevre/biosite/pkg/slogx"
)

// Router holds shared dependencies for the HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	logger *slog.Logger
	store  store.Store

	Accounts  *service.AccountService
	Profiles  *service.ProfileService
	StaticDir string
}

func NewRouter(st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:    http.NewServeMux(),
		logger: logger,
		store:  st,
	}

	// Global middleware chain: logging, metrics, then session resolution so
	// every handler sees an identity (possibly anonymous).
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metrics.HTTPMiddleware(),
		r.withIdentity,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerDashboard()
	r.registerPages()

	r.Mux.Handle("GET /metrics", metrics.Handler())
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{Accounts: r.Accounts, Logger: r.logger}

	r.Mux.HandleFunc("GET /login", h.HandleLoginForm)
	r.Mux.HandleFunc("GET /register", h.HandleRegisterForm)

	// Credential submissions get the strict per-address limit to slow down
	// brute force and mass signups.
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Logout is reachable from a plain link as well as a form.
	r.Mux.HandleFunc("GET /logout", h.HandleLogout)
	r.Mux.HandleFunc("POST /logout", h.HandleLogout)
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{Profiles: r.Profiles, Logger: r.logger}

	r.Mux.HandleFunc("GET /dashboard", h.HandleDashboard)
	r.Mux.HandleFunc("POST /update", h.HandleUpdate)
	r.Mux.HandleFunc("GET /customise", h.HandleCustomise)
	r.Mux.HandleFunc("POST /customise", h.HandleCustomiseUpdate)
}

func (r *Router) registerPages() {
	h := &PagesHandler{Profiles: r.Profiles, Logger: r.logger, StaticDir: r.StaticDir}

	r.Mux.HandleFunc("GET /{$}", h.HandleHome)
	r.Mux.HandleFunc("GET /styles.css", h.HandleStylesheet)

	// Any other single-segment GET is a public profile lookup; everything
	// else falls through to the catch-all 404.
	r.Mux.HandleFunc("GET /{username}", h.HandleProfile)
	r.Mux.HandleFunc("/", h.HandleNotFound)
}
