package http

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
)

// commonLogTimeLayout is the timestamp layout of the Apache common log
// format.
const commonLogTimeLayout = "02/Jan/2006:15:04:05 -0700"

// withLogging writes one access log entry per request. The message is the
// request in Apache common log format, the fields repeat it in structured
// form.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		log.Info().
			Str("remote", remoteHost(r.RemoteAddr)).
			Str("uri", uri).
			Str("method", method).
			Str("proto", r.Proto).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Msg(commonLogLine(r, start, status, lw.size))
	})
}

// commonLogLine formats a request as
// `host - - [time] "METHOD uri PROTO" status size`.
func commonLogLine(r *http.Request, at time.Time, status, size int) string {
	bytes := "-"
	if size > 0 {
		bytes = strconv.Itoa(size)
	}

	return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %s`,
		remoteHost(r.RemoteAddr),
		at.Format(commonLogTimeLayout),
		r.Method,
		r.RequestURI,
		r.Proto,
		status,
		bytes,
	)
}

func remoteHost(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	if remoteAddr == "" {
		return "-"
	}
	return remoteAddr
}
