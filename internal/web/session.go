package web

import (
	"context"
	"net/http"

	"github.com/nlefevre/biosite/pkg/cookiex"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "session"

type ctxKey string

const (
	ctxKeyUsername ctxKey = "username"
	ctxKeyToken    ctxKey = "session_token"
)

// withIdentity resolves the session cookie into a username for every
// request. Resolution never fails: an absent or unknown token simply leaves
// the request anonymous.
func (r *Router) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		token := cookiex.Parse(req.Header.Get("Cookie"))[SessionCookie]
		if token != "" {
			ctx = context.WithValue(ctx, ctxKeyToken, token)
			if username, err := r.store.Sessions().Owner(ctx, token); err == nil {
				ctx = context.WithValue(ctx, ctxKeyUsername, username)
			}
		}

		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// identityFrom returns the resolved username, or "" for anonymous requests.
func identityFrom(ctx context.Context) string {
	username, _ := ctx.Value(ctxKeyUsername).(string)
	return username
}

// tokenFrom returns the raw session cookie value, resolved or not.
func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(ctxKeyToken).(string)
	return token
}

// requireLogin turns an anonymous request into a redirect to the home page
// and reports whether the handler may continue.
func requireLogin(w http.ResponseWriter, req *http.Request) (string, bool) {
	username := identityFrom(req.Context())
	if username == "" {
		http.Redirect(w, req, "/", http.StatusFound)
		return "", false
	}
	return username, true
}
