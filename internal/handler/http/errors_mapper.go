package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/service"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidQueryParam: http.StatusBadRequest,
	ErrInvalidSortParam:  http.StatusBadRequest,

	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrInvalidDashboardDate: http.StatusInternalServerError,

	store.ErrInvalidID:           http.StatusNotFound,
	store.ErrUserNotFound:        http.StatusNotFound,
	store.ErrOverallStatNotFound: http.StatusNotFound,

	store.ErrExecutingQuery:    http.StatusInternalServerError,
	store.ErrDecodingDocuments: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
