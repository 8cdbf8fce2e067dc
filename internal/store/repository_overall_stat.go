package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type overallStatRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOverallStatRepository constructs an [OverallStatRepository] backed by db.
func NewOverallStatRepository(db *DB, logger *logger.Logger) OverallStatRepository {
	logger.Debug().Msg("creating overall stat repository")
	return &overallStatRepository{
		db:     db,
		logger: logger,
	}
}

func (r *overallStatRepository) FindOverallStatByYear(ctx context.Context, year int) (models.OverallStat, error) {
	return r.findOne(ctx, bson.D{{Key: "year", Value: year}}, "*overallStatRepository.FindOverallStatByYear")
}

func (r *overallStatRepository) FindFirstOverallStat(ctx context.Context) (models.OverallStat, error) {
	return r.findOne(ctx, bson.D{}, "*overallStatRepository.FindFirstOverallStat")
}

func (r *overallStatRepository) findOne(ctx context.Context, filter bson.D, funcName string) (models.OverallStat, error) {
	log := logger.FromContext(ctx)

	var stat models.OverallStat
	err := r.db.Collection(models.OverallStat{}.CollectionName()).FindOne(ctx, filter).Decode(&stat)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.OverallStat{}, ErrOverallStatNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error finding overall stat")
		return models.OverallStat{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stat, nil
}
