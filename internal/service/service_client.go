package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/models"
	"golang.org/x/text/language"
)

// maxTransactionsPageSize bounds a single transactions page.
const maxTransactionsPageSize = 1000

type clientService struct {
	productRepository     store.ProductRepository
	userRepository        store.UserRepository
	transactionRepository store.TransactionRepository

	logger *logger.Logger
}

// NewClientService builds the [ClientService] on top of the given
// repositories.
func NewClientService(
	productRepository store.ProductRepository,
	userRepository store.UserRepository,
	transactionRepository store.TransactionRepository,
	logger *logger.Logger,
) ClientService {
	return &clientService{
		productRepository:     productRepository,
		userRepository:        userRepository,
		transactionRepository: transactionRepository,
		logger:                logger,
	}
}

// GetProducts returns every product together with its statistics. A product
// without statistics gets an empty, non-nil list.
func (s *clientService) GetProducts(ctx context.Context) ([]models.ProductWithStats, error) {
	products, err := s.productRepository.FindAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error finding products: %w", err)
	}

	ids := make([]string, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID.Hex())
	}

	stats, err := s.productRepository.FindProductStats(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error finding product stats: %w", err)
	}

	statsByProduct := make(map[string][]models.ProductStat, len(products))
	for _, stat := range stats {
		statsByProduct[stat.ProductID] = append(statsByProduct[stat.ProductID], stat)
	}

	result := make([]models.ProductWithStats, 0, len(products))
	for _, product := range products {
		stat := statsByProduct[product.ID.Hex()]
		if stat == nil {
			stat = []models.ProductStat{}
		}
		result = append(result, models.ProductWithStats{Product: product, Stat: stat})
	}

	return result, nil
}

func (s *clientService) GetCustomers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.FindUsersByRole(ctx, models.RoleUser)
}

// GetTransactions returns one page of transactions. PageSize must be in
// 1..maxTransactionsPageSize, Page must not be negative and Page*PageSize
// must fit in an int64. A sort without a field is ignored by the repository.
func (s *clientService) GetTransactions(ctx context.Context, query models.TransactionQuery) (models.TransactionPage, error) {
	if query.Page < 0 || query.PageSize <= 0 {
		return models.TransactionPage{}, ErrInvalidDataProvided
	}
	if query.PageSize > maxTransactionsPageSize {
		return models.TransactionPage{}, fmt.Errorf("%w: page size above %d", ErrInvalidDataProvided, maxTransactionsPageSize)
	}
	if query.Page > math.MaxInt64/query.PageSize {
		return models.TransactionPage{}, fmt.Errorf("%w: page %d is out of range", ErrInvalidDataProvided, query.Page)
	}

	transactions, total, err := s.transactionRepository.FindTransactions(ctx, query)
	if err != nil {
		return models.TransactionPage{}, fmt.Errorf("error finding transactions: %w", err)
	}

	return models.TransactionPage{
		Transactions: transactions,
		Total:        total,
	}, nil
}

// GetGeography counts users per country, keyed by ISO 3166-1 alpha-3 code
// and sorted by code. Users whose country is not a known ISO-2 country code
// are left out.
func (s *clientService) GetGeography(ctx context.Context) ([]models.GeographyEntry, error) {
	log := logger.FromContext(ctx)

	counts, err := s.userRepository.CountUsersByCountry(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users by country: %w", err)
	}

	byISO3 := make(map[string]int, len(counts))
	for country, count := range counts {
		iso3, ok := countryISO3(country)
		if !ok {
			log.Debug().Str("func", "*clientService.GetGeography").Str("country", country).Msg("skipping unknown country")
			continue
		}
		byISO3[iso3] += count
	}

	entries := make([]models.GeographyEntry, 0, len(byISO3))
	for id, value := range byISO3 {
		entries = append(entries, models.GeographyEntry{ID: id, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}

// countryISO3 converts an ISO 3166-1 alpha-2 country code to alpha-3.
func countryISO3(iso2 string) (string, bool) {
	if len(iso2) != 2 {
		return "", false
	}

	region, err := language.ParseRegion(iso2)
	if err != nil || !region.IsCountry() {
		return "", false
	}

	return region.ISO3(), true
}
