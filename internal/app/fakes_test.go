package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"quotevault/internal/model"
	"quotevault/internal/repository"
)

// In-memory repository fakes. They enforce the same uniqueness invariants
// as the Mongo implementations so the services can be tested without a
// database.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) EmailTakenByOther(ctx context.Context, email string, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email && u.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, update model.UserUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return false, nil
	}

	if update.Email != nil {
		for _, other := range r.users {
			if other.ID != id && other.Email == *update.Email {
				return false, repository.ErrDuplicate
			}
		}
		u.Email = *update.Email
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.BumpGeneration {
		u.TokenGeneration++
	}
	u.UpdatedAt = time.Now()
	return true, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type fakeFavoriteRepo struct {
	mu        sync.Mutex
	favorites []model.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{}
}

func (r *fakeFavoriteRepo) Insert(ctx context.Context, favorite *model.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.favorites {
		if f.UserID == favorite.UserID && f.QuoteID == favorite.QuoteID {
			return repository.ErrDuplicate
		}
	}
	r.favorites = append(r.favorites, *favorite)
	return nil
}

func (r *fakeFavoriteRepo) Delete(ctx context.Context, userID primitive.ObjectID, quoteID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.favorites {
		if f.UserID == userID && f.QuoteID == quoteID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFavoriteRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []model.Favorite{}
	for _, f := range r.favorites {
		if f.UserID == userID {
			result = append(result, f)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AddedAt.After(result[j].AddedAt)
	})
	return result, nil
}

func (r *fakeFavoriteRepo) Exists(ctx context.Context, userID primitive.ObjectID, quoteID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.favorites {
		if f.UserID == userID && f.QuoteID == quoteID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFavoriteRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.favorites[:0]
	for _, f := range r.favorites {
		if f.UserID != userID {
			kept = append(kept, f)
		}
	}
	r.favorites = kept
	return nil
}

type fakeQuoteRepo struct {
	quotes []model.Quote
}

func (r *fakeQuoteRepo) All(ctx context.Context) ([]model.Quote, error) {
	return append([]model.Quote{}, r.quotes...), nil
}

func (r *fakeQuoteRepo) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	for i := range r.quotes {
		if r.quotes[i].ID == id {
			clone := r.quotes[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeQuoteRepo) ByCategory(ctx context.Context, category string) ([]model.Quote, error) {
	result := []model.Quote{}
	for _, q := range r.quotes {
		if q.Category == category {
			result = append(result, q)
		}
	}
	return result, nil
}

func (r *fakeQuoteRepo) Random(ctx context.Context) (*model.Quote, error) {
	if len(r.quotes) == 0 {
		return nil, nil
	}
	clone := r.quotes[0]
	return &clone, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.Activity
}

func (p *recordingPublisher) Publish(ctx context.Context, event model.Activity) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	actions := make([]string, len(p.events))
	for i, e := range p.events {
		actions[i] = e.Action
	}
	return actions
}
