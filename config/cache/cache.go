package cache

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

// ErrNotFound is returned when a key is absent or already expired.
var ErrNotFound = redis.Nil

/*
* Connect to Redis with address and password from env
* Ping so a dead cache fails at startup instead of on first login
 */
func Connect() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		return err
	}
	log.Info().Str("addr", addr).Msg("connected to redis")
	return nil
}

func Close() error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Close()
}

func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Rdb.Set(ctx, key, raw, ttl).Err()
}

func GetJSON(ctx context.Context, key string, dest interface{}) error {
	raw, err := Rdb.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func Delete(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}
