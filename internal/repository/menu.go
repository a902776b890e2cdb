package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro_backend/internal/domain"
)

// MenuRepository is the contract for the menu collection. GetByID returns
// mongo.ErrNoDocuments when no item matches.
type MenuRepository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error)
	Insert(ctx context.Context, item *domain.MenuItem) (*InsertResult, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, item *domain.MenuItem) (*UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type mongoMenuRepository struct {
	coll *mongo.Collection
}

// NewMenuRepository returns a MenuRepository backed by the menu collection
func NewMenuRepository(db *mongo.Database) MenuRepository {
	return &mongoMenuRepository{coll: db.Collection("menu")}
}

func (r *mongoMenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []domain.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoMenuRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mongoMenuRepository) Insert(ctx context.Context, item *domain.MenuItem) (*InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: res.InsertedID.(primitive.ObjectID)}, nil
}

// UpdateFields sets exactly the whitelisted menu fields: name, category,
// recipe, price, image. Other fields in the incoming document are ignored.
func (r *mongoMenuRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, item *domain.MenuItem) (*UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"name":     item.Name,
		"category": item.Category,
		"recipe":   item.Recipe,
		"price":    item.Price,
		"image":    item.Image,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *mongoMenuRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *mongoMenuRepository) EstimatedCount(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}
