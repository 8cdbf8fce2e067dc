package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

var traceIDGenerator = utils.NewUUIDGenerator()

// withTraceID attaches a request-scoped logger carrying the trace id (taken
// from X-Trace-ID or generated) and the chi request id, and echoes the trace
// id back in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = traceIDGenerator.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			c = c.Str("trace_id", traceID)
			if requestID := middleware.GetReqID(ctx); requestID != "" {
				c = c.Str("request_id", requestID)
			}
			return c
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
