package model

import "time"

// Quote identity is the numeric id field, not the Mongo _id. Categories are
// stored lowercased so category lookups stay case-insensitive.
type Quote struct {
	ID        int64     `bson:"id" json:"id"`
	Text      string    `bson:"text" json:"text"`
	Author    string    `bson:"author" json:"author"`
	Category  string    `bson:"category" json:"category"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
