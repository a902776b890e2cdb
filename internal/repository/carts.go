package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro_backend/internal/domain"
)

// CartRepository is the contract for the carts collection. Cart items are
// owned by a single email; DeleteMany is used for post-payment cleanup.
type CartRepository interface {
	ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
	Insert(ctx context.Context, item *domain.CartItem) (*InsertResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (*DeleteResult, error)
}

type mongoCartRepository struct {
	coll *mongo.Collection
}

// NewCartRepository returns a CartRepository backed by the carts collection
func NewCartRepository(db *mongo.Database) CartRepository {
	return &mongoCartRepository{coll: db.Collection("carts")}
}

func (r *mongoCartRepository) ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	items := []domain.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoCartRepository) Insert(ctx context.Context, item *domain.CartItem) (*InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: res.InsertedID.(primitive.ObjectID)}, nil
}

func (r *mongoCartRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *mongoCartRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (*DeleteResult, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}
