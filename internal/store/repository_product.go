package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/models"
	"go.mongodb.org/mongo-driver/bson"
)

type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) FindAllProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.db.Collection(models.Product{}.CollectionName()).Find(ctx, bson.D{})
	if err != nil {
		log.Err(err).Str("func", "*productRepository.FindAllProducts").Msg("error finding products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	products := make([]models.Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		log.Err(err).Str("func", "*productRepository.FindAllProducts").Msg("error decoding products")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocuments, err)
	}

	return products, nil
}

// FindProductStats returns the statistics of every product in productIDs
// with a single query.
func (r *productRepository) FindProductStats(ctx context.Context, productIDs []string) ([]models.ProductStat, error) {
	log := logger.FromContext(ctx)

	if len(productIDs) == 0 {
		return []models.ProductStat{}, nil
	}

	filter := bson.D{{Key: "productId", Value: bson.D{{Key: "$in", Value: productIDs}}}}
	cursor, err := r.db.Collection(models.ProductStat{}.CollectionName()).Find(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.FindProductStats").Msg("error finding product stats")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	stats := make([]models.ProductStat, 0)
	if err = cursor.All(ctx, &stats); err != nil {
		log.Err(err).Str("func", "*productRepository.FindProductStats").Msg("error decoding product stats")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocuments, err)
	}

	return stats, nil
}
