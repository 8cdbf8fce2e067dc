package service

import (
	"context"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

type salesService struct {
	overallStatRepository store.OverallStatRepository

	logger *logger.Logger
}

func NewSalesService(overallStatRepository store.OverallStatRepository, logger *logger.Logger) SalesService {
	return &salesService{
		overallStatRepository: overallStatRepository,
		logger:                logger,
	}
}

// GetSales returns the first overall statistics document.
func (s *salesService) GetSales(ctx context.Context) (models.OverallStat, error) {
	return s.overallStatRepository.FindFirstOverallStat(ctx)
}
