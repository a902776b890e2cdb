package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem model. Mutated only through admin-gated endpoints; read publicly.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category" json:"category"`
	Recipe   string             `bson:"recipe" json:"recipe"`
	Price    float64            `bson:"price" json:"price"`
	Image    string             `bson:"image" json:"image"`
}
