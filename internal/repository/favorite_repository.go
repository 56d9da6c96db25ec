package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quotevault/internal/model"
)

type MongoFavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) *MongoFavoriteRepository {
	return &MongoFavoriteRepository{col: db.Collection("favorites")}
}

// Insert relies on the unique (user_id, quote_id) index: a concurrent
// duplicate surfaces as ErrDuplicate instead of a second row.
func (r *MongoFavoriteRepository) Insert(ctx context.Context, favorite *model.Favorite) error {
	if _, err := r.col.InsertOne(ctx, favorite); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert favorite failed: %w", err)
	}
	return nil
}

func (r *MongoFavoriteRepository) Delete(ctx context.Context, userID primitive.ObjectID, quoteID int64) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID, "quote_id": quoteID})
	if err != nil {
		return false, fmt.Errorf("delete favorite failed: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoFavoriteRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Favorite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list favorites failed: %w", err)
	}
	defer cur.Close(ctx)

	favorites := []model.Favorite{}
	if err := cur.All(ctx, &favorites); err != nil {
		return nil, fmt.Errorf("decode favorites failed: %w", err)
	}
	return favorites, nil
}

func (r *MongoFavoriteRepository) Exists(ctx context.Context, userID primitive.ObjectID, quoteID int64) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"user_id": userID, "quote_id": quoteID})
	if err != nil {
		return false, fmt.Errorf("check favorite failed: %w", err)
	}
	return count > 0, nil
}

func (r *MongoFavoriteRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete user favorites failed: %w", err)
	}
	return nil
}
