package http

import (
	"fmt"
	"net/http"
	"strings"
)

// contentSecurityPolicy is the default policy sent with every response.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"base-uri 'self'",
	"font-src 'self' https: data:",
	"form-action 'self'",
	"frame-ancestors 'self'",
	"img-src 'self' data:",
	"object-src 'none'",
	"script-src 'self'",
	"script-src-attr 'none'",
	"style-src 'self' https: 'unsafe-inline'",
	"upgrade-insecure-requests",
}, ";")

// withSecurityHeaders sets the standard security response headers. The
// cross-origin resource policy is relaxed to cross-origin so that the
// dashboard frontend can be served from another origin.
func (h *Handler) withSecurityHeaders(next http.Handler) http.Handler {
	hsts := fmt.Sprintf("max-age=%d; includeSubDomains", int64(h.cfg.HSTSMaxAge.Seconds()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Content-Security-Policy", contentSecurityPolicy)
		header.Set("Cross-Origin-Opener-Policy", "same-origin")
		header.Set("Cross-Origin-Resource-Policy", "cross-origin")
		header.Set("Origin-Agent-Cluster", "?1")
		header.Set("Referrer-Policy", "no-referrer")
		if h.cfg.HSTSMaxAge > 0 {
			header.Set("Strict-Transport-Security", hsts)
		}
		header.Set("X-Content-Type-Options", "nosniff")
		header.Set("X-DNS-Prefetch-Control", "off")
		header.Set("X-Download-Options", "noopen")
		header.Set("X-Frame-Options", "SAMEORIGIN")
		header.Set("X-Permitted-Cross-Domain-Policies", "none")
		header.Set("X-XSS-Protection", "0")
		header.Del("X-Powered-By")

		next.ServeHTTP(w, r)
	})
}
