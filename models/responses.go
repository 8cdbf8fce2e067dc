package models

// TransactionPage is the response of the transactions list.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`

	// Total is the number of transactions matching the search, across all
	// pages.
	Total int64 `json:"total"`
}

// GeographyEntry is the number of users living in one country.
// ID is an ISO 3166-1 alpha-3 code, the format map charts consume.
type GeographyEntry struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

// DashboardStats is the payload of the general dashboard.
type DashboardStats struct {
	TotalCustomers       int                `json:"totalCustomers"`
	YearlyTotalSoldUnits int                `json:"yearlyTotalSoldUnits"`
	YearlySalesTotal     float64            `json:"yearlySalesTotal"`
	MonthlyData          []MonthlySales     `json:"monthlyData"`
	SalesByCategory      map[string]float64 `json:"salesByCategory"`

	// ThisMonthStats and TodayStats are nil when the reference month or day
	// has no entry in the yearly statistics.
	ThisMonthStats *MonthlySales `json:"thisMonthStats"`
	TodayStats     *DailySales   `json:"todayStats"`

	Transactions []Transaction `json:"transactions"`
}

// UserWithAffiliateStats is a user joined with its affiliate statistics.
type UserWithAffiliateStats struct {
	User `bson:",inline"`

	AffiliateStats AffiliateStat `bson:"affiliateStats" json:"affiliateStats"`
}

// UserPerformance is the payload of the management performance view.
type UserPerformance struct {
	User  UserWithAffiliateStats `json:"user"`
	Sales []Transaction          `json:"sales"`
}

// ErrorResponse is the JSON body of every error answered by the API.
// Error is only set for unexpected failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
