package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-admin-dashboard/internal/app"
	"github.com/MKhiriev/go-admin-dashboard/internal/config"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withBodyParsing prepares request bodies for handlers:
//   - gzip-encoded bodies are decompressed;
//   - bodies are capped at MaxBodyBytes (413 when exceeded);
//   - JSON bodies must be well-formed (400 otherwise) and are re-readable;
//   - URL-encoded bodies are parsed into r.PostForm (400 otherwise).
func (h *Handler) withBodyParsing(next http.Handler) http.Handler {
	limit := h.cfg.MaxBodyBytes
	if limit <= 0 {
		limit = config.DefaultMaxBodyBytes
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(r.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				writeMessage(w, r, http.StatusBadRequest, app.MsgInvalidGzipBody)
				return
			}

			r.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			r.Header.Del("Content-Encoding")
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)

		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		switch {
		case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
			body, err := io.ReadAll(r.Body)
			if err != nil {
				writeBodyError(w, r, err, app.MsgInvalidJSONBody)
				return
			}
			if len(body) > 0 && !json.Valid(body) {
				writeMessage(w, r, http.StatusBadRequest, app.MsgInvalidJSONBody)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				writeBodyError(w, r, err, app.MsgInvalidFormBody)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func writeBodyError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		writeMessage(w, r, http.StatusRequestEntityTooLarge, app.MsgBodyTooLarge)
		return
	}
	writeMessage(w, r, http.StatusBadRequest, message)
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}
