package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/app"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
)

// withRateLimit rejects requests above the configured global rate with
// 429 Too Many Requests. It is a pass-through when no limiter is set.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter != nil && !h.limiter.Allow() {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			writeMessage(w, r, http.StatusTooManyRequests, app.MsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
