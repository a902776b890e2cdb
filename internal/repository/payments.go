package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro_backend/internal/domain"
)

// PaymentRepository is the contract for the payments collection, including
// the two reporting aggregations.
type PaymentRepository interface {
	List(ctx context.Context) ([]domain.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
	Insert(ctx context.Context, payment *domain.Payment) (*InsertResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error)
}

type mongoPaymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository returns a PaymentRepository backed by the payments collection
func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &mongoPaymentRepository{coll: db.Collection("payments")}
}

func (r *mongoPaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoPaymentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *mongoPaymentRepository) find(ctx context.Context, filter bson.M) ([]domain.Payment, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	payments := []domain.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *mongoPaymentRepository) Insert(ctx context.Context, payment *domain.Payment) (*InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: res.InsertedID.(primitive.ObjectID)}, nil
}

func (r *mongoPaymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}

// TotalRevenue sums the price of every payment record. Returns 0 when the
// collection is empty.
func (r *mongoPaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var results []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalRevenue, nil
}

// CategoryBreakdown expands every payment's purchased menu item ids, joins
// them against the menu collection and groups by category. A purchased id
// with no matching menu document is dropped by the inner $unwind.
func (r *mongoPaymentRepository) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "menu"},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: "$quantity"},
			{Key: "revenue", Value: "$revenue"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	stats := []domain.CategoryStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
