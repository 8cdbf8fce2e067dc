package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

// ClientService serves the customer-facing views: catalogue, customers,
// transactions and geography.
type ClientService interface {
	GetProducts(ctx context.Context) ([]models.ProductWithStats, error)
	GetCustomers(ctx context.Context) ([]models.User, error)
	GetTransactions(ctx context.Context, query models.TransactionQuery) (models.TransactionPage, error)
	GetGeography(ctx context.Context) ([]models.GeographyEntry, error)
}

// GeneralService serves the user profile and the dashboard summary.
type GeneralService interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	GetDashboardStats(ctx context.Context) (models.DashboardStats, error)
}

// ManagementService serves the administrator views.
type ManagementService interface {
	GetAdmins(ctx context.Context) ([]models.User, error)
	GetUserPerformance(ctx context.Context, id string) (models.UserPerformance, error)
}

// SalesService serves the overall sales figures.
type SalesService interface {
	GetSales(ctx context.Context) (models.OverallStat, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
