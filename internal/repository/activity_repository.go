package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"quotevault/internal/model"
)

type MongoActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{col: db.Collection("activities")}
}

func (r *MongoActivityRepository) Insert(ctx context.Context, activity *model.Activity) error {
	if _, err := r.col.InsertOne(ctx, activity); err != nil {
		return fmt.Errorf("insert activity failed: %w", err)
	}
	return nil
}
