package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem model. Scoped to a single owner email; removed one by one or in
// bulk when a payment clears the cart.
type CartItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	MenuID primitive.ObjectID `bson:"menuId" json:"menuId"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Price  float64            `bson:"price" json:"price"`
}
