package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/app"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	writePlain(w, r, http.StatusOK, app.MsgServerBanner)
}

// healthz answers 200 when the database responds to a ping and 503
// otherwise.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.pinger == nil {
		writeMessage(w, r, http.StatusServiceUnavailable, app.MsgDatabaseUnavailable)
		return
	}

	if err := h.pinger.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.healthz").Msg("database ping failed")
		writeMessage(w, r, http.StatusServiceUnavailable, app.MsgDatabaseUnavailable)
		return
	}

	writeOK(w, r, map[string]string{"status": "ok"})
}
