package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// withoutPassword is the projection applied to every user query.
var withoutPassword = bson.D{{Key: "password", Value: 0}}

// userRepository is the MongoDB-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) collection() *mongo.Collection {
	return r.db.Collection(models.User{}.CollectionName())
}

// FindUserByID returns the user with the given hex id.
//
// Error handling:
//   - malformed id → [ErrInvalidID];
//   - no document → [ErrUserNotFound];
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrInvalidID
	}

	var user models.User
	err = r.collection().
		FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}, options.FindOne().SetProjection(withoutPassword)).
		Decode(&user)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUsersByRole returns every user holding role.
func (r *userRepository) FindUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection().Find(ctx, bson.D{{Key: "role", Value: role}}, options.Find().SetProjection(withoutPassword))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByRole").Str("role", string(role)).Msg("error finding users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	users := make([]models.User, 0)
	if err = cursor.All(ctx, &users); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByRole").Msg("error decoding users")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocuments, err)
	}

	return users, nil
}

// countryCount is one row of the users-per-country aggregation.
type countryCount struct {
	Country string `bson:"_id"`
	Count   int    `bson:"count"`
}

// CountUsersByCountry groups users by their ISO-2 country code.
func (r *userRepository) CountUsersByCountry(ctx context.Context) (map[string]int, error) {
	log := logger.FromContext(ctx)

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$country"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsersByCountry").Msg("error aggregating users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var rows []countryCount
	if err = cursor.All(ctx, &rows); err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsersByCountry").Msg("error decoding country counts")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocuments, err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Country] += row.Count
	}

	return counts, nil
}

// FindUserWithAffiliateStat joins the user with its affiliate statistics.
// A user without affiliate statistics is reported as [ErrUserNotFound].
func (r *userRepository) FindUserWithAffiliateStat(ctx context.Context, id string) (models.UserWithAffiliateStats, error) {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.UserWithAffiliateStats{}, ErrInvalidID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: objectID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: models.AffiliateStat{}.CollectionName()},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "userId"},
			{Key: "as", Value: "affiliateStats"},
		}}},
		{{Key: "$unwind", Value: "$affiliateStats"}},
		{{Key: "$project", Value: withoutPassword}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserWithAffiliateStat").Msg("error aggregating user")
		return models.UserWithAffiliateStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var users []models.UserWithAffiliateStats
	if err = cursor.All(ctx, &users); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserWithAffiliateStat").Msg("error decoding user")
		return models.UserWithAffiliateStats{}, fmt.Errorf("%w: %w", ErrDecodingDocuments, err)
	}
	if len(users) == 0 {
		return models.UserWithAffiliateStats{}, ErrUserNotFound
	}

	return users[0], nil
}
