package httpx

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the client network address for a request. It honours
// X-Forwarded-For and X-Real-IP for proxied requests and falls back to the
// RemoteAddr host. The registration guard and the rate limiter key on the
// same value so "one account per address" and throttling agree on what an
// address is.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
