package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/propertypal/pms-backend/storage"
)

// OpenStorage connects the configured durable backend.
func (c Config) OpenStorage(ctx context.Context) (storage.Store, error) {
	switch c.Backend {
	case BackendMemory:
		return storage.NewMemory(), nil
	case BackendSQLite:
		return storage.OpenSQLite(c.SQLitePath)
	case BackendRedis:
		return connectRedis(ctx, c)
	case BackendMongo:
		return connectMongo(ctx, c)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.Backend)
	}
}

func connectRedis(ctx context.Context, c Config) (*storage.Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       0,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	slog.Info("connected to Redis", "addr", c.RedisAddr)
	return storage.NewRedis(client), nil
}

func connectMongo(ctx context.Context, c Config) (*storage.Mongo, error) {
	if c.MongoURI == "" {
		return nil, errors.New("MONGOURI not set in environment")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.TODO())
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	slog.Info("connected to MongoDB", "db", c.MongoDB)
	return storage.NewMongo(client, c.MongoDB), nil
}
