package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"quotevault/internal/model"
)

// ErrDuplicate signals a store-level uniqueness violation (email, favorite
// pair). Services map it to their conflict errors.
var ErrDuplicate = errors.New("duplicate key")

// Lookups return (nil, nil) when the record does not exist; only real store
// failures produce an error.

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	EmailTakenByOther(ctx context.Context, email string, id primitive.ObjectID) (bool, error)
	Update(ctx context.Context, id primitive.ObjectID, update model.UserUpdate) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type QuoteRepository interface {
	All(ctx context.Context) ([]model.Quote, error)
	GetByID(ctx context.Context, id int64) (*model.Quote, error)
	ByCategory(ctx context.Context, category string) ([]model.Quote, error)
	Random(ctx context.Context) (*model.Quote, error)
}

type FavoriteRepository interface {
	Insert(ctx context.Context, favorite *model.Favorite) error
	Delete(ctx context.Context, userID primitive.ObjectID, quoteID int64) (bool, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Favorite, error)
	Exists(ctx context.Context, userID primitive.ObjectID, quoteID int64) (bool, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

type ActivityRepository interface {
	Insert(ctx context.Context, activity *model.Activity) error
}
