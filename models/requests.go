package models

// SortDirection is the order requested for a sortable column.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// TransactionSort is the JSON-encoded "sort" query parameter of the
// transactions list, e.g. {"field":"cost","sort":"desc"}.
type TransactionSort struct {
	Field string        `json:"field"`
	Sort  SortDirection `json:"sort"`
}

// sortableTransactionFields are the stored transaction fields a list may be
// ordered by.
var sortableTransactionFields = map[string]struct{}{
	"_id":       {},
	"userId":    {},
	"cost":      {},
	"products":  {},
	"createdAt": {},
	"updatedAt": {},
}

// Sortable reports whether Field names a stored transaction field.
func (s TransactionSort) Sortable() bool {
	_, ok := sortableTransactionFields[s.Field]
	return ok
}

// Order returns the MongoDB sort order: 1 for ascending, -1 otherwise.
func (s TransactionSort) Order() int {
	if s.Sort == SortAsc {
		return 1
	}
	return -1
}

// TransactionQuery describes one page of the transactions list.
type TransactionQuery struct {
	// Page is multiplied by PageSize to compute the number of skipped
	// documents.
	Page int64

	// PageSize is the maximum number of returned documents.
	PageSize int64

	// Sort is nil when no ordering was requested.
	Sort *TransactionSort

	// Search is matched case-insensitively against cost and userId.
	Search string
}

// Skip returns the number of documents to skip for the query page.
func (q TransactionQuery) Skip() int64 {
	return q.Page * q.PageSize
}
