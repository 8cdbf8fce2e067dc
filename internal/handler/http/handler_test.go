package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/mock"
	"github.com/MKhiriev/go-admin-dashboard/internal/service"
	"github.com/MKhiriev/go-admin-dashboard/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler returns a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// serviceMocks holds the gomock services behind a test Handler.
type serviceMocks struct {
	client     *mock.MockClientService
	general    *mock.MockGeneralService
	management *mock.MockManagementService
	sales      *mock.MockSalesService
	appInfo    *mock.MockAppInfoService
}

// stubPinger answers Ping with err.
type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

// newMockedHandler builds a Handler over gomock services with the given
// server configuration.
func newMockedHandler(t *testing.T, cfg config.Server) (*Handler, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &serviceMocks{
		client:     mock.NewMockClientService(ctrl),
		general:    mock.NewMockGeneralService(ctrl),
		management: mock.NewMockManagementService(ctrl),
		sales:      mock.NewMockSalesService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		ClientService:     mocks.client,
		GeneralService:    mocks.general,
		ManagementService: mocks.management,
		SalesService:      mocks.sales,
		AppInfoService:    mocks.appInfo,
	}

	return NewHandler(services, stubPinger{}, cfg, logger.Nop()), mocks
}

// serve runs a request through router and returns the recorder.
func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeErrorResponse decodes a JSON error body.
func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

// newBufferLogger returns a logger writing JSON lines to buf.
func newBufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf).With().Timestamp().Logger()}
}
