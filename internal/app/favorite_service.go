package app

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"quotevault/internal/model"
	"quotevault/internal/repository"
)

var (
	ErrInvalidQuoteID  = errors.New("invalid quote ID")
	ErrAlreadyFavorite = errors.New("quote is already in favorites")
	ErrNotFavorite     = errors.New("quote not found in favorites")
)

type FavoriteService struct {
	favorites repository.FavoriteRepository
	events    EventPublisher
}

func NewFavoriteService(favorites repository.FavoriteRepository, events EventPublisher) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		events:    events,
	}
}

// Add inserts the pair and lets the unique index decide whether it already
// existed. No pre-check, so two concurrent adds cannot both succeed.
func (s *FavoriteService) Add(ctx context.Context, userID, quoteID string) error {
	uid, qid, err := parseFavoriteIDs(userID, quoteID)
	if err != nil {
		return err
	}

	favorite := &model.Favorite{
		UserID:  uid,
		QuoteID: qid,
		AddedAt: time.Now(),
	}
	if err := s.favorites.Insert(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyFavorite
		}
		return err
	}

	publishActivity(ctx, s.events, model.Activity{
		UserID:     uid,
		Action:     model.ActivityFavoriteAdded,
		QuoteID:    qid,
		OccurredAt: time.Now(),
	})
	return nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, quoteID string) error {
	uid, qid, err := parseFavoriteIDs(userID, quoteID)
	if err != nil {
		return err
	}

	deleted, err := s.favorites.Delete(ctx, uid, qid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFavorite
	}

	publishActivity(ctx, s.events, model.Activity{
		UserID:     uid,
		Action:     model.ActivityFavoriteRemoved,
		QuoteID:    qid,
		OccurredAt: time.Now(),
	})
	return nil
}

// List returns the user's favorites, newest added first.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]model.Favorite, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}
	return s.favorites.ListByUser(ctx, uid)
}

// IsFavorite is a convenience predicate: malformed ids answer false rather
// than failing.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, quoteID string) (bool, error) {
	uid, qid, err := parseFavoriteIDs(userID, quoteID)
	if err != nil {
		return false, nil
	}
	return s.favorites.Exists(ctx, uid, qid)
}

func parseFavoriteIDs(userID, quoteID string) (primitive.ObjectID, int64, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, 0, ErrInvalidUserID
	}
	qid, err := strconv.ParseInt(quoteID, 10, 64)
	if err != nil || qid <= 0 {
		return primitive.NilObjectID, 0, ErrInvalidQuoteID
	}
	return uid, qid, nil
}
