package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro_backend/internal/domain"
)

// ReviewRepository reads the reviews collection. Reviews have no write
// endpoint in this service.
type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
}

type mongoReviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository returns a ReviewRepository backed by the reviews collection
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &mongoReviewRepository{coll: db.Collection("reviews")}
}

func (r *mongoReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	reviews := []domain.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
