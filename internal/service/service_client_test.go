package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/mock"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestClientSvc(t *testing.T) (
	ClientService,
	*mock.MockProductRepository,
	*mock.MockUserRepository,
	*mock.MockTransactionRepository,
) {
	t.Helper()
	ctrl := gomock.NewController(t)

	products := mock.NewMockProductRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)
	transactions := mock.NewMockTransactionRepository(ctrl)

	return NewClientService(products, users, transactions, logger.Nop()), products, users, transactions
}

func TestClientService_GetProducts(t *testing.T) {
	svc, products, _, _ := newTestClientSvc(t)
	ctx := context.Background()

	withStats := models.Product{ID: primitive.NewObjectID(), Name: "Keyboard"}
	withoutStats := models.Product{ID: primitive.NewObjectID(), Name: "Mouse"}

	products.EXPECT().FindAllProducts(ctx).Return([]models.Product{withStats, withoutStats}, nil)
	products.EXPECT().
		FindProductStats(ctx, []string{withStats.ID.Hex(), withoutStats.ID.Hex()}).
		Return([]models.ProductStat{
			{ProductID: withStats.ID.Hex(), Year: 2021},
			{ProductID: withStats.ID.Hex(), Year: 2022},
		}, nil)

	got, err := svc.GetProducts(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Keyboard", got[0].Name)
	assert.Len(t, got[0].Stat, 2)
	assert.Equal(t, "Mouse", got[1].Name)
	assert.NotNil(t, got[1].Stat)
	assert.Empty(t, got[1].Stat)
}

func TestClientService_GetProducts_Errors(t *testing.T) {
	t.Run("products query fails", func(t *testing.T) {
		svc, products, _, _ := newTestClientSvc(t)
		products.EXPECT().FindAllProducts(gomock.Any()).Return(nil, store.ErrExecutingQuery)

		_, err := svc.GetProducts(context.Background())

		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})

	t.Run("stats query fails", func(t *testing.T) {
		svc, products, _, _ := newTestClientSvc(t)
		products.EXPECT().FindAllProducts(gomock.Any()).Return([]models.Product{{ID: primitive.NewObjectID()}}, nil)
		products.EXPECT().FindProductStats(gomock.Any(), gomock.Any()).Return(nil, store.ErrDecodingDocuments)

		_, err := svc.GetProducts(context.Background())

		assert.ErrorIs(t, err, store.ErrDecodingDocuments)
	})
}

func TestClientService_GetCustomers(t *testing.T) {
	svc, _, users, _ := newTestClientSvc(t)
	want := []models.User{{Name: "a", Role: models.RoleUser}}

	users.EXPECT().FindUsersByRole(gomock.Any(), models.RoleUser).Return(want, nil)

	got, err := svc.GetCustomers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientService_GetTransactions(t *testing.T) {
	tests := []struct {
		name    string
		query   models.TransactionQuery
		wantErr error
	}{
		{
			name:  "valid query",
			query: models.TransactionQuery{Page: 1, PageSize: 20},
		},
		{
			name:  "first page with sort",
			query: models.TransactionQuery{Page: 0, PageSize: 5, Sort: &models.TransactionSort{Field: "cost", Sort: models.SortDesc}},
		},
		{
			name:    "negative page",
			query:   models.TransactionQuery{Page: -1, PageSize: 20},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "zero page size",
			query:   models.TransactionQuery{Page: 1, PageSize: 0},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:  "sort without field",
			query: models.TransactionQuery{Page: 1, PageSize: 20, Sort: &models.TransactionSort{Sort: models.SortAsc}},
		},
		{
			name:    "skip overflows int64",
			query:   models.TransactionQuery{Page: 4611686018427387904, PageSize: 4},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "max page",
			query:   models.TransactionQuery{Page: math.MaxInt64, PageSize: 2},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:  "largest skip that fits",
			query: models.TransactionQuery{Page: math.MaxInt64 / maxTransactionsPageSize, PageSize: maxTransactionsPageSize},
		},
		{
			name:    "page size above limit",
			query:   models.TransactionQuery{Page: 0, PageSize: maxTransactionsPageSize + 1},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, transactions := newTestClientSvc(t)

			if tt.wantErr == nil {
				transactions.EXPECT().
					FindTransactions(gomock.Any(), tt.query).
					Return([]models.Transaction{{Cost: "1.00"}}, int64(7), nil)
			}

			page, err := svc.GetTransactions(context.Background(), tt.query)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, page.Transactions, 1)
			assert.EqualValues(t, 7, page.Total)
		})
	}
}

func TestClientService_GetTransactions_RepositoryError(t *testing.T) {
	svc, _, _, transactions := newTestClientSvc(t)
	transactions.EXPECT().FindTransactions(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("boom"))

	_, err := svc.GetTransactions(context.Background(), models.TransactionQuery{Page: 1, PageSize: 20})

	assert.ErrorContains(t, err, "boom")
}

func TestClientService_GetGeography(t *testing.T) {
	svc, _, users, _ := newTestClientSvc(t)

	users.EXPECT().CountUsersByCountry(gomock.Any()).Return(map[string]int{
		"US":  3,
		"FR":  2,
		"BR":  1,
		"":    4,
		"ZZ":  1,
		"XYZ": 1,
	}, nil)

	got, err := svc.GetGeography(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.GeographyEntry{
		{ID: "BRA", Value: 1},
		{ID: "FRA", Value: 2},
		{ID: "USA", Value: 3},
	}, got)
}

func TestClientService_GetGeography_Error(t *testing.T) {
	svc, _, users, _ := newTestClientSvc(t)
	users.EXPECT().CountUsersByCountry(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.GetGeography(context.Background())

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestCountryISO3(t *testing.T) {
	tests := []struct {
		iso2   string
		want   string
		wantOK bool
	}{
		{iso2: "US", want: "USA", wantOK: true},
		{iso2: "gb", want: "GBR", wantOK: true},
		{iso2: "ID", want: "IDN", wantOK: true},
		{iso2: "", wantOK: false},
		{iso2: "USA", wantOK: false},
		{iso2: "ZZ", wantOK: false},
		{iso2: "12", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.iso2, func(t *testing.T) {
			got, ok := countryISO3(tt.iso2)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
