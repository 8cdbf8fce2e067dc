package http

import (
	"net/http"
)

// getServerVersion answers the build version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writePlain(w, r, http.StatusOK, h.services.AppInfoService.GetAppVersion(r.Context()))
}
