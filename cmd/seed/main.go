package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro_backend/internal/config"
	"bistro_backend/internal/db"
	"bistro_backend/internal/domain"
)

// Seeds the menu and reviews collections from JSON files. Mongo needs no
// schema migration, but a fresh deployment needs menu data before the
// frontend is usable.
func main() {
	menuPath := flag.String("menu", "data/menu.json", "path to menu items JSON")
	reviewsPath := flag.String("reviews", "data/reviews.json", "path to reviews JSON")
	flag.Parse()

	cfg := config.LoadConfig()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logrus.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	database := client.Database(cfg.DBName)

	var menuItems []domain.MenuItem
	if err := loadJSON(*menuPath, &menuItems); err != nil {
		logrus.Fatalf("failed to load menu items: %v", err)
	}
	var reviews []domain.Review
	if err := loadJSON(*reviewsPath, &reviews); err != nil {
		logrus.Fatalf("failed to load reviews: %v", err)
	}

	if err := insertAll(ctx, database.Collection("menu"), toAny(menuItems)); err != nil {
		logrus.Fatalf("failed to seed menu: %v", err)
	}
	if err := insertAll(ctx, database.Collection("reviews"), toAny(reviews)); err != nil {
		logrus.Fatalf("failed to seed reviews: %v", err)
	}
	logrus.Infof("Seeded %d menu items and %d reviews", len(menuItems), len(reviews))
}

func loadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func insertAll(ctx context.Context, coll *mongo.Collection, docs []any) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}

func toAny[T any](items []T) []any {
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}
