package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Name         string             `bson:"name" json:"name"`
	// TokenGeneration is embedded in issued tokens and bumped whenever the
	// email changes, so stale tokens stop verifying.
	TokenGeneration int       `bson:"token_generation" json:"-"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// UserUpdate carries the mutable profile fields; nil means unchanged.
type UserUpdate struct {
	Name           *string
	Email          *string
	BumpGeneration bool
}
