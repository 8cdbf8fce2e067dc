package service

import (
	"testing"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/mock"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStorages(t *testing.T) *store.Storages {
	ctrl := gomock.NewController(t)
	return &store.Storages{
		UserRepository:        mock.NewMockUserRepository(ctrl),
		ProductRepository:     mock.NewMockProductRepository(ctrl),
		TransactionRepository: mock.NewMockTransactionRepository(ctrl),
		OverallStatRepository: mock.NewMockOverallStatRepository(ctrl),
	}
}

func TestNewServices(t *testing.T) {
	services, err := NewServices(newTestStorages(t), config.App{
		DashboardDate: config.DefaultDashboardDate,
		Version:       "1.0.0",
	}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.ClientService)
	assert.NotNil(t, services.GeneralService)
	assert.NotNil(t, services.ManagementService)
	assert.NotNil(t, services.SalesService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_Errors(t *testing.T) {
	t.Run("invalid dashboard date", func(t *testing.T) {
		_, err := NewServices(newTestStorages(t), config.App{DashboardDate: "nope", Version: "1.0.0"}, logger.Nop())

		assert.ErrorIs(t, err, ErrInvalidDashboardDate)
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := NewServices(newTestStorages(t), config.App{DashboardDate: config.DefaultDashboardDate}, logger.Nop())

		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})
}
