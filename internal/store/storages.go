package store

import "github.com/MKhiriev/go-admin-dashboard/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository        UserRepository
	ProductRepository     ProductRepository
	TransactionRepository TransactionRepository
	OverallStatRepository OverallStatRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		ProductRepository:     NewProductRepository(db, logger),
		TransactionRepository: NewTransactionRepository(db, logger),
		OverallStatRepository: NewOverallStatRepository(db, logger),
	}
}
