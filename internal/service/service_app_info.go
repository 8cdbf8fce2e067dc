package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
)

// appInfoService reports the build the server runs.
type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService returns the service reporting cfg.Version. The version is
// filled from build information, "N/A" when the binary carries none, so an
// empty value is a wiring error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	logger.Debug().Str("version", version).Msg("app info service created")

	return &appInfoService{
		version: version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
