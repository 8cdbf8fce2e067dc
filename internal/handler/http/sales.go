package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) salesRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/sales", h.getSales)
	return r
}

func (h *Handler) getSales(w http.ResponseWriter, r *http.Request) {
	stat, err := h.services.SalesService.GetSales(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, stat)
}
