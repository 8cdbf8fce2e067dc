package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-admin-dashboard/models"
	"github.com/go-chi/chi/v5"
)

// Transaction list defaults.
const (
	defaultTransactionsPage     = 1
	defaultTransactionsPageSize = 20
)

func (h *Handler) clientRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/products", h.getProducts)
	r.Get("/customers", h.getCustomers)
	r.Get("/transactions", h.getTransactions)
	r.Get("/geography", h.getGeography)
	return r
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.services.ClientService.GetProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, products)
}

func (h *Handler) getCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.services.ClientService.GetCustomers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, customers)
}

func (h *Handler) getTransactions(w http.ResponseWriter, r *http.Request) {
	query, err := parseTransactionQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.ClientService.GetTransactions(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, page)
}

func (h *Handler) getGeography(w http.ResponseWriter, r *http.Request) {
	locations, err := h.services.ClientService.GetGeography(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, locations)
}

// parseTransactionQuery reads page, pageSize, sort and search from the query
// string. sort is a JSON object such as {"field":"cost","sort":"desc"}; an
// object without a field means no ordering, any other field must be a stored
// transaction field.
func parseTransactionQuery(r *http.Request) (models.TransactionQuery, error) {
	values := r.URL.Query()

	page, err := intParam(values.Get("page"), defaultTransactionsPage)
	if err != nil {
		return models.TransactionQuery{}, fmt.Errorf("page: %w", err)
	}
	pageSize, err := intParam(values.Get("pageSize"), defaultTransactionsPageSize)
	if err != nil {
		return models.TransactionQuery{}, fmt.Errorf("pageSize: %w", err)
	}

	query := models.TransactionQuery{
		Page:     page,
		PageSize: pageSize,
		Search:   values.Get("search"),
	}

	if raw := values.Get("sort"); raw != "" {
		var sort models.TransactionSort
		if err := json.Unmarshal([]byte(raw), &sort); err != nil {
			return models.TransactionQuery{}, fmt.Errorf("%w: %w", ErrInvalidSortParam, err)
		}
		if sort.Field != "" {
			if !sort.Sortable() {
				return models.TransactionQuery{}, fmt.Errorf("%w: unknown field %q", ErrInvalidSortParam, sort.Field)
			}
			query.Sort = &sort
		}
	}

	return query, nil
}

func intParam(raw string, fallback int64) (int64, error) {
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQueryParam, raw)
	}

	return v, nil
}
