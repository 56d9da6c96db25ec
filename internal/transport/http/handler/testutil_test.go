package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"quotevault/internal/app"
	"quotevault/internal/model"
	"quotevault/internal/repository"
	"quotevault/internal/transport/http/middleware"
)

const testSecret = "test-secret"

// Minimal in-memory repositories backing full-stack handler tests.

type memUserRepo struct {
	users map[primitive.ObjectID]*model.User
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) EmailTakenByOther(ctx context.Context, email string, id primitive.ObjectID) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) Update(ctx context.Context, id primitive.ObjectID, update model.UserUpdate) (bool, error) {
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.BumpGeneration {
		u.TokenGeneration++
	}
	u.UpdatedAt = time.Now()
	return true, nil
}

func (r *memUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type memFavoriteRepo struct {
	favorites []model.Favorite
}

func (r *memFavoriteRepo) Insert(ctx context.Context, favorite *model.Favorite) error {
	for _, f := range r.favorites {
		if f.UserID == favorite.UserID && f.QuoteID == favorite.QuoteID {
			return repository.ErrDuplicate
		}
	}
	r.favorites = append(r.favorites, *favorite)
	return nil
}

func (r *memFavoriteRepo) Delete(ctx context.Context, userID primitive.ObjectID, quoteID int64) (bool, error) {
	for i, f := range r.favorites {
		if f.UserID == userID && f.QuoteID == quoteID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memFavoriteRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Favorite, error) {
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

func (r *memFavoriteRepo) Exists(ctx context.Context, userID primitive.ObjectID, quoteID int64) (bool, error) {
	for _, f := range r.favorites {
		if f.UserID == userID && f.QuoteID == quoteID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memFavoriteRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	kept := r.favorites[:0]
	for _, f := range r.favorites {
		if f.UserID != userID {
			kept = append(kept, f)
		}
	}
	r.favorites = kept
	return nil
}

type memQuoteRepo struct {
	quotes []model.Quote
}

func (r *memQuoteRepo) All(ctx context.Context) ([]model.Quote, error) {
	return append([]model.Quote{}, r.quotes...), nil
}

func (r *memQuoteRepo) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	for i := range r.quotes {
		if r.quotes[i].ID == id {
			clone := r.quotes[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memQuoteRepo) ByCategory(ctx context.Context, category string) ([]model.Quote, error) {
	result := []model.Quote{}
	for _, q := range r.quotes {
		if q.Category == category {
			result = append(result, q)
		}
	}
	return result, nil
}

func (r *memQuoteRepo) Random(ctx context.Context) (*model.Quote, error) {
	if len(r.quotes) == 0 {
		return nil, nil
	}
	clone := r.quotes[0]
	return &clone, nil
}

// newTestAPI wires the same routes as the production router, on in-memory
// repositories and without redis or the broker.
func newTestAPI() *gin.Engine {
	gin.SetMode(gin.TestMode)

	users := &memUserRepo{users: map[primitive.ObjectID]*model.User{}}
	favorites := &memFavoriteRepo{}
	quotes := &memQuoteRepo{quotes: []model.Quote{
		{ID: 1, Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Category: "passion"},
		{ID: 2, Text: "Keep going.", Author: "Sam Levenson", Category: "perseverance"},
	}}

	accountService := app.NewAccountService(users, favorites, nil, nil, testSecret, time.Hour)
	favoriteService := app.NewFavoriteService(favorites, nil)
	quoteService := app.NewQuoteService(quotes)

	authHandler := NewAuthHandler(accountService, true)
	quoteHandler := NewQuoteHandler(quoteService, favoriteService, true)
	favoriteHandler := NewFavoriteHandler(favoriteService, true)

	requireAuth := middleware.AuthJWT(testSecret, accountService)
	optionalAuth := middleware.OptionalAuth(testSecret, accountService)

	router := gin.New()
	api := router.Group("/api")

	qg := api.Group("/quotes")
	qg.GET("", quoteHandler.All)
	qg.GET("/random", quoteHandler.Random)
	qg.GET("/category/:category", quoteHandler.ByCategory)
	qg.GET("/:id", optionalAuth, quoteHandler.ByID)

	ag := api.Group("/auth")
	ag.POST("/register", authHandler.Register)
	ag.POST("/login", authHandler.Login)
	ag.GET("/profile", requireAuth, authHandler.Profile)
	ag.PUT("/profile", requireAuth, authHandler.UpdateProfile)
	ag.DELETE("/profile", requireAuth, authHandler.DeleteProfile)

	fg := api.Group("/favorites")
	fg.Use(requireAuth)
	fg.GET("", favoriteHandler.List)
	fg.POST("/:quoteId", favoriteHandler.Add)
	fg.DELETE("/:quoteId", favoriteHandler.Remove)
	fg.GET("/check/:quoteId", favoriteHandler.Check)

	return router
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, router *gin.Engine, email, password, name string) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": password,
		"name":     name,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
