package helpers

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Timeout = 10 * time.Second

const (
	UserCollection    = "user"
	BudgetCollection  = "budget"
	ExpenseCollection = "expense"
)

func MongoHelper(URI string, databaseName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(URI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	slog.Info("MongoDB connection established", "database", databaseName)

	return client.Database(databaseName), nil
}

func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	_, err := db.Collection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	for _, name := range []string{BudgetCollection, ExpenseCollection} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "month", Value: 1}},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func DisconnectMongo(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		slog.Error("Error disconnecting from MongoDB", "error", err)
		return
	}

	slog.Info("Disconnected from MongoDB")
}
