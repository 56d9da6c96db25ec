package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"quotevault/internal/model"
)

type MongoQuoteRepository struct {
	col *mongo.Collection
}

func NewQuoteRepository(db *mongo.Database) *MongoQuoteRepository {
	return &MongoQuoteRepository{col: db.Collection("quotes")}
}

func (r *MongoQuoteRepository) All(ctx context.Context) ([]model.Quote, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list quotes failed: %w", err)
	}
	defer cur.Close(ctx)

	quotes := []model.Quote{}
	if err := cur.All(ctx, &quotes); err != nil {
		return nil, fmt.Errorf("decode quotes failed: %w", err)
	}
	return quotes, nil
}

func (r *MongoQuoteRepository) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	var quote model.Quote
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&quote); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("query quote by id failed: %w", err)
	}
	return &quote, nil
}

func (r *MongoQuoteRepository) ByCategory(ctx context.Context, category string) ([]model.Quote, error) {
	cur, err := r.col.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, fmt.Errorf("list quotes by category failed: %w", err)
	}
	defer cur.Close(ctx)

	quotes := []model.Quote{}
	if err := cur.All(ctx, &quotes); err != nil {
		return nil, fmt.Errorf("decode quotes failed: %w", err)
	}
	return quotes, nil
}

// Random draws one document via the $sample aggregation stage.
func (r *MongoQuoteRepository) Random(ctx context.Context) (*model.Quote, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("sample random quote failed: %w", err)
	}
	defer cur.Close(ctx)

	var quotes []model.Quote
	if err := cur.All(ctx, &quotes); err != nil {
		return nil, fmt.Errorf("decode random quote failed: %w", err)
	}
	if len(quotes) == 0 {
		return nil, nil
	}
	return &quotes[0], nil
}

// Seed inserts the sample set once, when the collection is empty. Safe to
// call on every startup.
func (r *MongoQuoteRepository) Seed(ctx context.Context) error {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count quotes failed: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(sampleQuotes))
	for _, q := range sampleQuotes {
		q.CreatedAt = now
		q.UpdatedAt = now
		docs = append(docs, q)
	}

	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed quotes failed: %w", err)
	}
	log.Printf("seeded %d sample quotes", len(docs))
	return nil
}

var sampleQuotes = []model.Quote{
	{
		ID:       1,
		Text:     "The only way to do great work is to love what you do.",
		Author:   "Steve Jobs",
		Category: "passion",
	},
	{
		ID:       2,
		Text:     "Success is not final, failure is not fatal: it is the courage to continue that counts.",
		Author:   "Winston Churchill",
		Category: "perseverance",
	},
	{
		ID:       3,
		Text:     "The future belongs to those who believe in the beauty of their dreams.",
		Author:   "Eleanor Roosevelt",
		Category: "dreams",
	},
	{
		ID:       4,
		Text:     "Don't watch the clock; do what it does. Keep going.",
		Author:   "Sam Levenson",
		Category: "perseverance",
	},
	{
		ID:       5,
		Text:     "The only limit to our realization of tomorrow is our doubts of today.",
		Author:   "Franklin D. Roosevelt",
		Category: "optimism",
	},
}
