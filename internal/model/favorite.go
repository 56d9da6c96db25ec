package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite links a user to a quote. The (user_id, quote_id) pair is unique
// in the store; the insert itself is the existence check.
type Favorite struct {
	UserID  primitive.ObjectID `bson:"user_id" json:"user_id"`
	QuoteID int64              `bson:"quote_id" json:"quote_id"`
	AddedAt time.Time          `bson:"added_at" json:"added_at"`
}
