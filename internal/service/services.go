package service

import (
	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
)

type Services struct {
	ClientService     ClientService
	GeneralService    GeneralService
	ManagementService ManagementService
	SalesService      SalesService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	generalService, err := NewGeneralService(storages.UserRepository, storages.TransactionRepository, storages.OverallStatRepository, cfg, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ClientService:     NewClientService(storages.ProductRepository, storages.UserRepository, storages.TransactionRepository, logger),
		GeneralService:    generalService,
		ManagementService: NewManagementService(storages.UserRepository, storages.TransactionRepository, logger),
		SalesService:      NewSalesService(storages.OverallStatRepository, logger),
		AppInfoService:    appInfoService,
	}, nil
}
