package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is an item of the shop catalogue.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Rating      float64            `bson:"rating" json:"rating"`
	Supply      int                `bson:"supply" json:"supply"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CollectionName returns the name of the collection associated with the
// Product model.
func (p Product) CollectionName() string {
	return "products"
}

// ProductStat holds the yearly sales figures of a single product.
type ProductStat struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID            string             `bson:"productId" json:"productId"`
	YearlySalesTotal     float64            `bson:"yearlySalesTotal" json:"yearlySalesTotal"`
	YearlyTotalSoldUnits int                `bson:"yearlyTotalSoldUnits" json:"yearlyTotalSoldUnits"`
	Year                 int                `bson:"year" json:"year"`
	MonthlyData          []MonthlySales     `bson:"monthlyData" json:"monthlyData"`
	DailyData            []DailySales       `bson:"dailyData" json:"dailyData"`
}

// CollectionName returns the name of the collection associated with the
// ProductStat model.
func (p ProductStat) CollectionName() string {
	return "productstats"
}

// ProductWithStats is a catalogue item together with its statistics.
type ProductWithStats struct {
	Product `bson:",inline"`

	Stat []ProductStat `json:"stat"`
}
