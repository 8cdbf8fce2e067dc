package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-admin-dashboard/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository reads user documents. Passwords are never returned.
type UserRepository interface {
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
	CountUsersByCountry(ctx context.Context) (map[string]int, error)
	FindUserWithAffiliateStat(ctx context.Context, id string) (models.UserWithAffiliateStats, error)
}

// ProductRepository reads the catalogue and its statistics.
type ProductRepository interface {
	FindAllProducts(ctx context.Context) ([]models.Product, error)
	FindProductStats(ctx context.Context, productIDs []string) ([]models.ProductStat, error)
}

// TransactionRepository reads purchase documents.
type TransactionRepository interface {
	// FindTransactions returns one page of transactions and the number of
	// documents matching the query search across all pages.
	FindTransactions(ctx context.Context, query models.TransactionQuery) ([]models.Transaction, int64, error)
	FindRecentTransactions(ctx context.Context, limit int64) ([]models.Transaction, error)
	FindTransactionsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Transaction, error)
}

// OverallStatRepository reads the shop-wide yearly statistics.
type OverallStatRepository interface {
	FindOverallStatByYear(ctx context.Context, year int) (models.OverallStat, error)
	FindFirstOverallStat(ctx context.Context) (models.OverallStat, error)
}
