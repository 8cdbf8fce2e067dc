package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
)

// withRecovery turns a panic in any downstream handler into a 500 response
// with the generic error body. [http.ErrAbortHandler] is re-raised so the
// server can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		if !ok {
			rw = &responseWriter{ResponseWriter: w}
		}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecovery").
				Str("uri", r.RequestURI).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			writeInternalError(rw, r, fmt.Sprint(rec))
		}()

		next.ServeHTTP(rw, r)
	})
}
