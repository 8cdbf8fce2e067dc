package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) managementRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/admins", h.getAdmins)
	r.Get("/performance/{id}", h.getUserPerformance)
	return r
}

func (h *Handler) getAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.services.ManagementService.GetAdmins(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, admins)
}

func (h *Handler) getUserPerformance(w http.ResponseWriter, r *http.Request) {
	performance, err := h.services.ManagementService.GetUserPerformance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, performance)
}
