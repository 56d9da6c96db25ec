package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActivityRegistered      = "registered"
	ActivityLoggedIn        = "logged_in"
	ActivityFavoriteAdded   = "favorite_added"
	ActivityFavoriteRemoved = "favorite_removed"
	ActivityAccountDeleted  = "account_deleted"
)

// Activity is an advisory audit event. It travels through the broker as JSON
// and is persisted asynchronously for the stats endpoint.
type Activity struct {
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
	Action     string             `bson:"action" json:"action"`
	QuoteID    int64              `bson:"quote_id,omitempty" json:"quote_id,omitempty"`
	OccurredAt time.Time          `bson:"occurred_at" json:"occurred_at"`
}
