package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "quotevault/internal/app"
	"quotevault/internal/bootstrap"
	"quotevault/internal/cache"
	"quotevault/internal/platform/rabbitmq"
	"quotevault/internal/repository"
	"quotevault/internal/transport/http/handler"
	"quotevault/internal/transport/http/middleware"
	"quotevault/internal/transport/http/response"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	userRepo := repository.NewUserRepository(app.Mongo)
	quoteRepo := repository.NewQuoteRepository(app.Mongo)
	favoriteRepo := repository.NewFavoriteRepository(app.Mongo)

	generations := cache.NewGenerationCache(
		app.Redis,
		time.Duration(app.Config.Redis.GenerationTTLSeconds)*time.Second,
	)
	events := rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.ActivityQueue)

	accountService := appsvc.NewAccountService(
		userRepo,
		favoriteRepo,
		generations,
		events,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireHour)*time.Hour,
	)
	favoriteService := appsvc.NewFavoriteService(favoriteRepo, events)
	quoteService := appsvc.NewQuoteService(quoteRepo)

	dev := app.Config.DevMode()
	authHandler := handler.NewAuthHandler(accountService, dev)
	quoteHandler := handler.NewQuoteHandler(quoteService, favoriteService, dev)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService, dev)
	healthHandler := handler.NewHealthHandler(app)

	secret := app.Config.Auth.JWTSecret
	requireAuth := middleware.AuthJWT(secret, accountService)
	optionalAuth := middleware.OptionalAuth(secret, accountService)

	router.GET("/", indexHandler(app))

	api := router.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.GET("/stats", healthHandler.Stats)

	quotes := api.Group("/quotes")
	quotes.GET("", quoteHandler.All)
	quotes.GET("/random", quoteHandler.Random)
	quotes.GET("/category/:category", quoteHandler.ByCategory)
	quotes.GET("/:id", optionalAuth, quoteHandler.ByID)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", requireAuth, authHandler.Profile)
	auth.PUT("/profile", requireAuth, authHandler.UpdateProfile)
	auth.DELETE("/profile", requireAuth, authHandler.DeleteProfile)

	favorites := api.Group("/favorites")
	favorites.Use(requireAuth)
	favorites.GET("", favoriteHandler.List)
	favorites.POST("/:quoteId", favoriteHandler.Add)
	favorites.DELETE("/:quoteId", favoriteHandler.Remove)
	favorites.GET("/check/:quoteId", favoriteHandler.Check)

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, 404, "route not found")
	})

	return router
}

func indexHandler(app *bootstrap.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome to the " + app.Config.App.Name + " API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"getAllQuotes":        "GET /api/quotes",
				"getRandomQuote":      "GET /api/quotes/random",
				"getQuoteById":        "GET /api/quotes/:id",
				"getQuotesByCategory": "GET /api/quotes/category/:category",
				"healthCheck":         "GET /api/health",
				"databaseStats":       "GET /api/stats",
				"register":            "POST /api/auth/register",
				"login":               "POST /api/auth/login",
				"getProfile":          "GET /api/auth/profile",
				"updateProfile":       "PUT /api/auth/profile",
				"deleteProfile":       "DELETE /api/auth/profile",
				"getFavorites":        "GET /api/favorites",
				"addToFavorites":      "POST /api/favorites/:quoteId",
				"removeFromFavorites": "DELETE /api/favorites/:quoteId",
				"checkFavorite":       "GET /api/favorites/check/:quoteId",
			},
		})
	}
}
