package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) generalRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/user/{id}", h.getUser)
	r.Get("/dashboard", h.getDashboardStats)
	return r
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.GeneralService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, user)
}

func (h *Handler) getDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.GeneralService.GetDashboardStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, stats)
}
