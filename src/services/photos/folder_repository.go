package photos

import (
	"context"
	"fmt"

	"Backend-Masons-Leads/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoFolderRepository struct {
	coll *mongo.Collection
}

func NewMongoFolderRepository(coll *mongo.Collection) *MongoFolderRepository {
	return &MongoFolderRepository{coll: coll}
}

func (r *MongoFolderRepository) Insert(ctx context.Context, folder *models.PhotoFolder) (string, error) {
	res, err := r.coll.InsertOne(ctx, folder)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		folder.ID = oid
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// FindAll returns every folder, newest first.
func (r *MongoFolderRepository) FindAll(ctx context.Context) ([]models.PhotoFolder, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	folders := []models.PhotoFolder{}
	if err := cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}
