package repository

import "go.mongodb.org/mongo-driver/bson/primitive"

// Write-operation result shapes returned to API clients. Field names follow
// the MongoDB driver result conventions the frontend already consumes.

// InsertResult reports the id assigned by an insert
type InsertResult struct {
	InsertedID primitive.ObjectID `json:"insertedId"`
}

// UpdateResult reports how many documents an update matched and modified
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many documents a delete removed
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
