package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MonthlySales aggregates sales for one calendar month.
type MonthlySales struct {
	Month      string  `bson:"month" json:"month"`
	TotalSales float64 `bson:"totalSales" json:"totalSales"`
	TotalUnits int     `bson:"totalUnits" json:"totalUnits"`
}

// DailySales aggregates sales for one day. Date is formatted as YYYY-MM-DD.
type DailySales struct {
	Date       string  `bson:"date" json:"date"`
	TotalSales float64 `bson:"totalSales" json:"totalSales"`
	TotalUnits int     `bson:"totalUnits" json:"totalUnits"`
}

// OverallStat holds the shop-wide figures of one year.
type OverallStat struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TotalCustomers       int                `bson:"totalCustomers" json:"totalCustomers"`
	YearlySalesTotal     float64            `bson:"yearlySalesTotal" json:"yearlySalesTotal"`
	YearlyTotalSoldUnits int                `bson:"yearlyTotalSoldUnits" json:"yearlyTotalSoldUnits"`
	Year                 int                `bson:"year" json:"year"`
	MonthlyData          []MonthlySales     `bson:"monthlyData" json:"monthlyData"`
	DailyData            []DailySales       `bson:"dailyData" json:"dailyData"`
	SalesByCategory      map[string]float64 `bson:"salesByCategory" json:"salesByCategory"`
}

// CollectionName returns the name of the collection associated with the
// OverallStat model.
func (o OverallStat) CollectionName() string {
	return "overallstats"
}

// MonthStats returns the monthly figures for month and whether they exist.
func (o OverallStat) MonthStats(month string) (MonthlySales, bool) {
	for _, m := range o.MonthlyData {
		if m.Month == month {
			return m, true
		}
	}
	return MonthlySales{}, false
}

// DayStats returns the daily figures for date (YYYY-MM-DD) and whether they
// exist.
func (o OverallStat) DayStats(date string) (DailySales, bool) {
	for _, d := range o.DailyData {
		if d.Date == date {
			return d, true
		}
	}
	return DailySales{}, false
}

// AffiliateStat links a user to the transactions they brought in.
type AffiliateStat struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	UserID         primitive.ObjectID   `bson:"userId" json:"userId"`
	AffiliateSales []primitive.ObjectID `bson:"affiliateSales" json:"affiliateSales"`
}

// CollectionName returns the name of the collection associated with the
// AffiliateStat model.
func (a AffiliateStat) CollectionName() string {
	return "affiliatestats"
}
