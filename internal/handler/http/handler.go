package http

import (
	"context"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/service"
	"golang.org/x/time/rate"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	pinger   Pinger
	cfg      config.Server

	// limiter is nil when rate limiting is disabled.
	limiter *rate.Limiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, pinger Pinger, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services: services,
		pinger:   pinger,
		cfg:      cfg,
		logger:   logger,
	}
	if cfg.RateLimit > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	return h
}
