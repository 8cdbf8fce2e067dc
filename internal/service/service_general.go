package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

// recentTransactionsLimit is the number of transactions shown on the
// dashboard.
const recentTransactionsLimit = 50

type generalService struct {
	userRepository        store.UserRepository
	transactionRepository store.TransactionRepository
	overallStatRepository store.OverallStatRepository

	// dashboardDate is the day the dashboard treats as "today".
	dashboardDate time.Time

	logger *logger.Logger
}

// NewGeneralService builds the [GeneralService]. cfg.DashboardDate must be
// a YYYY-MM-DD date.
func NewGeneralService(
	userRepository store.UserRepository,
	transactionRepository store.TransactionRepository,
	overallStatRepository store.OverallStatRepository,
	cfg config.App,
	logger *logger.Logger,
) (GeneralService, error) {
	date, err := time.Parse(config.DashboardDateLayout, cfg.DashboardDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDashboardDate, err)
	}

	return &generalService{
		userRepository:        userRepository,
		transactionRepository: transactionRepository,
		overallStatRepository: overallStatRepository,
		dashboardDate:         date,
		logger:                logger,
	}, nil
}

func (s *generalService) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

// GetDashboardStats combines the overall statistics of the dashboard year
// with the figures of the dashboard month and day and the most recent
// transactions.
func (s *generalService) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	transactions, err := s.transactionRepository.FindRecentTransactions(ctx, recentTransactionsLimit)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("error finding recent transactions: %w", err)
	}

	overallStat, err := s.overallStatRepository.FindOverallStatByYear(ctx, s.dashboardDate.Year())
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("error finding overall stat: %w", err)
	}

	stats := models.DashboardStats{
		TotalCustomers:       overallStat.TotalCustomers,
		YearlyTotalSoldUnits: overallStat.YearlyTotalSoldUnits,
		YearlySalesTotal:     overallStat.YearlySalesTotal,
		MonthlyData:          overallStat.MonthlyData,
		SalesByCategory:      overallStat.SalesByCategory,
		Transactions:         transactions,
	}

	if month, ok := overallStat.MonthStats(s.dashboardDate.Month().String()); ok {
		stats.ThisMonthStats = &month
	}
	if day, ok := overallStat.DayStats(s.dashboardDate.Format(config.DashboardDateLayout)); ok {
		stats.TodayStats = &day
	}

	return stats, nil
}
