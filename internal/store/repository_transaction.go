package store

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type transactionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTransactionRepository constructs a [TransactionRepository] backed by db.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transactionRepository) collection() *mongo.Collection {
	return r.db.Collection(models.Transaction{}.CollectionName())
}

// searchFilter matches search literally and case-insensitively against cost
// or userId. An empty search matches everything.
func searchFilter(search string) bson.D {
	if search == "" {
		return bson.D{}
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "cost", Value: pattern}},
		bson.D{{Key: "userId", Value: pattern}},
	}}}
}

// FindTransactions returns the requested page and the total number of
// documents matching the same search filter.
func (r *transactionRepository) FindTransactions(ctx context.Context, query models.TransactionQuery) ([]models.Transaction, int64, error) {
	log := logger.FromContext(ctx)

	filter := searchFilter(query.Search)

	opts := options.Find().SetSkip(query.Skip()).SetLimit(query.PageSize)
	if query.Sort != nil && query.Sort.Field != "" {
		opts.SetSort(bson.D{{Key: query.Sort.Field, Value: query.Sort.Order()}})
	}

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.FindTransactions").Msg("error finding transactions")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	transactions := make([]models.Transaction, 0)
	if err = cursor.All(ctx, &transactions); err != nil {
		log.Err(err).Str("func", "*transactionRepository.FindTransactions").Msg("error decoding transactions")
		return nil, 0, fmt.Errorf("%w: %w", ErrDecodingDocuments, err)
	}

	total, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.FindTransactions").Msg("error counting transactions")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return transactions, total, nil
}

// FindRecentTransactions returns at most limit transactions, newest first.
func (r *transactionRepository) FindRecentTransactions(ctx context.Context, limit int64) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection().Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.FindRecentTransactions").Msg("error finding transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	transactions := make([]models.Transaction, 0)
	if err = cursor.All(ctx, &transactions); err != nil {
		log.Err(err).Str("func", "*transactionRepository.FindRecentTransactions").Msg("error decoding transactions")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocuments, err)
	}

	return transactions, nil
}

// FindTransactionsByIDs returns the existing transactions among ids, in no
// particular order.
func (r *transactionRepository) FindTransactionsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []models.Transaction{}, nil
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.FindTransactionsByIDs").Msg("error finding transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	transactions := make([]models.Transaction, 0, len(ids))
	if err = cursor.All(ctx, &transactions); err != nil {
		log.Err(err).Str("func", "*transactionRepository.FindTransactionsByIDs").Msg("error decoding transactions")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocuments, err)
	}

	return transactions, nil
}
