package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type managementService struct {
	userRepository        store.UserRepository
	transactionRepository store.TransactionRepository

	logger *logger.Logger
}

func NewManagementService(
	userRepository store.UserRepository,
	transactionRepository store.TransactionRepository,
	logger *logger.Logger,
) ManagementService {
	return &managementService{
		userRepository:        userRepository,
		transactionRepository: transactionRepository,
		logger:                logger,
	}
}

func (s *managementService) GetAdmins(ctx context.Context) ([]models.User, error) {
	return s.userRepository.FindUsersByRole(ctx, models.RoleAdmin)
}

// GetUserPerformance returns the user joined with its affiliate statistics
// and the affiliate sales that still exist, in affiliateSales order.
func (s *managementService) GetUserPerformance(ctx context.Context, id string) (models.UserPerformance, error) {
	user, err := s.userRepository.FindUserWithAffiliateStat(ctx, id)
	if err != nil {
		return models.UserPerformance{}, fmt.Errorf("error finding user performance: %w", err)
	}

	saleIDs := user.AffiliateStats.AffiliateSales
	found, err := s.transactionRepository.FindTransactionsByIDs(ctx, saleIDs)
	if err != nil {
		return models.UserPerformance{}, fmt.Errorf("error finding affiliate sales: %w", err)
	}

	return models.UserPerformance{
		User:  user,
		Sales: orderByIDs(found, saleIDs),
	}, nil
}

// orderByIDs arranges transactions in the order of ids. Ids without a
// transaction are skipped; a repeated id yields the transaction again.
func orderByIDs(transactions []models.Transaction, ids []primitive.ObjectID) []models.Transaction {
	byID := make(map[primitive.ObjectID]models.Transaction, len(transactions))
	for _, transaction := range transactions {
		byID[transaction.ID] = transaction
	}

	ordered := make([]models.Transaction, 0, len(ids))
	for _, id := range ids {
		if transaction, ok := byID[id]; ok {
			ordered = append(ordered, transaction)
		}
	}

	return ordered
}
