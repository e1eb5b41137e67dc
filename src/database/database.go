package database

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB และตรวจสอบด้วย ping
func ConnectMongoDB(ctx context.Context, mongoURI string) (*mongo.Client, error) {
	if mongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Println("✅ MongoDB connected successfully")
	return client, nil
}

// EnsureLeadIndexes makes archive inserts idempotent per submission.
func EnsureLeadIndexes(ctx context.Context, leads *mongo.Collection) error {
	_, err := leads.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "submissionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
