package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"quotevault/internal/config"
	mongoClient "quotevault/internal/platform/mongodb"
	rabbitmqClient "quotevault/internal/platform/rabbitmq"
	redisClient "quotevault/internal/platform/redis"
	"quotevault/internal/repository"
	"quotevault/internal/worker"
)

type App struct {
	Config         *config.Config
	Mongo          *mongo.Database
	MongoConn      *mongo.Client
	Redis          *redis.Client
	MQConn         *amqp.Connection
	ActivityWorker *worker.ActivityWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		log.Printf("WARNING: running with the default JWT secret; set JWT_SECRET in production")
	}

	client, db, err := mongoClient.New(ctx, cfg.Mongo.URI, cfg.Mongo.DB)
	if err != nil {
		return nil, err
	}
	if err := repository.Migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("migrate indexes failed: %w", err)
	}
	if err := repository.NewQuoteRepository(db).Seed(ctx); err != nil {
		return nil, fmt.Errorf("seed quotes failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	activityRepo := repository.NewActivityRepository(db)
	activityWorker := worker.NewActivityWorker(mqConn, activityRepo, cfg.RabbitMQ.ActivityQueue)
	if err := activityWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start activity worker failed: %w", err)
	}

	return &App{
		Config:         cfg,
		Mongo:          db,
		MongoConn:      client,
		Redis:          redisCli,
		MQConn:         mqConn,
		ActivityWorker: activityWorker,
		StartedAt:      time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.ActivityWorker != nil {
		a.ActivityWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MongoConn != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.MongoConn.Disconnect(ctx); err != nil {
			closeErr = err
		}
	}
	return closeErr
}
