package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/puissance4/backend/internal/service/bot"
)

const defaultKeyPrefix = "p4:move:"

// InitRedis connects to addr. A failed ping is not fatal: it is logged and
// nil is returned so callers fall back to the in-process cache.
func InitRedis(ctx context.Context, addr, password string, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("[REDIS] could not connect, using in-memory move cache", zap.String("addr", addr), zap.Error(err))
		client.Close()
		return nil
	}

	logger.Info("[REDIS] connected", zap.String("addr", addr))
	return client
}

// MoveCache stores search results in redis as JSON.
type MoveCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
}

var _ bot.MoveCache = (*MoveCache)(nil)

// NewMoveCache wraps client. A zero ttl keeps entries until evicted by redis.
func NewMoveCache(client redis.UniversalClient, ttl time.Duration) *MoveCache {
	return &MoveCache{client: client, ttl: ttl, prefix: defaultKeyPrefix}
}

func (c *MoveCache) Get(ctx context.Context, key string) (bot.Result, bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return bot.Result{}, false, nil
	}
	if err != nil {
		return bot.Result{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var res bot.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return bot.Result{}, false, fmt.Errorf("decode cached move %s: %w", key, err)
	}
	return res, true, nil
}

func (c *MoveCache) Set(ctx context.Context, key string, res bot.Result) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode move %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
