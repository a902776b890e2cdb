package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment model. Immutable once recorded; cartIds are the cart documents
// cleared by this payment, menuItemIds the purchased menu items (referenced
// by the category breakdown aggregation).
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	TransactionID string               `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CartIDs       []primitive.ObjectID `bson:"cartIds" json:"cartIds"`
	MenuItemIDs   []primitive.ObjectID `bson:"menuItemIds" json:"menuItemIds"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`
	Date          time.Time            `bson:"date" json:"date"`
}

// CategoryStat is one row of the order status breakdown: all line items of
// all payments grouped by menu category.
type CategoryStat struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

// AdminStats summarises the store for the admin dashboard. Counts are
// estimated document counts, not exact transactional counts.
type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}
