package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/stretchr/testify/assert"
)

func corsRequest(t *testing.T, origins []string, method, origin string, extra map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	h := &Handler{cfg: config.Server{CORSAllowedOrigins: origins}}
	handler := h.withCORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/client/products", nil)
	req.Header.Set("Origin", origin)
	for k, v := range extra {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestWithCORS_DefaultAllowsAnyOrigin(t *testing.T) {
	rr := corsRequest(t, nil, http.MethodGet, "http://localhost:3000", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.CanonicalHeaderKey(traceIDHeader), rr.Header().Get("Access-Control-Expose-Headers"))
}

func TestWithCORS_ConfiguredOrigins(t *testing.T) {
	origins := []string{"https://dashboard.example.com"}

	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{name: "allowed origin", origin: "https://dashboard.example.com", wantOrigin: "https://dashboard.example.com"},
		{name: "foreign origin", origin: "https://evil.example.com", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := corsRequest(t, origins, http.MethodGet, tt.origin, nil)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestWithCORS_Preflight(t *testing.T) {
	rr := corsRequest(t, nil, http.MethodOptions, "http://localhost:3000", map[string]string{
		"Access-Control-Request-Method":  http.MethodGet,
		"Access-Control-Request-Headers": "Content-Type",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.MethodGet, rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "300", rr.Header().Get("Access-Control-Max-Age"))
}
