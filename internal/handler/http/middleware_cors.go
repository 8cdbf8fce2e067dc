package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/go-chi/cors"
)

// withCORS allows the configured origins to call every route with the
// usual REST methods and any request header.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = config.DefaultCORSAllowedOrigins
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
