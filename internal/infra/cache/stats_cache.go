// Package cache provides the ledger statistics cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"mescontacts/config"
	"mescontacts/internal/domain/entity"
	"mescontacts/internal/domain/lifecycle"
	"mescontacts/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const statsKey = "mescontacts:ledger:stats"

// Params holds dependencies for StatsCache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStatsCache returns a Redis cache when redis.enabled is set, a no-op cache otherwise.
func NewStatsCache(params Params) service.StatsCache {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis not configured, ledger stats are computed on every request")

		return noopStatsCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisStatsCache(client, cfg.StatsTTL)
}

type redisStatsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStatsCache stores stats as JSON under a single key.
func NewRedisStatsCache(client redis.Cmdable, ttl time.Duration) service.StatsCache {
	return &redisStatsCache{client: client, ttl: ttl}
}

func (c *redisStatsCache) Get(ctx context.Context) (*entity.PaymentStats, bool, error) {
	data, err := c.client.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read cached stats")
	}

	var stats entity.PaymentStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode cached stats")
	}

	return &stats, true, nil
}

func (c *redisStatsCache) Set(ctx context.Context, stats *entity.PaymentStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, statsKey, data, c.ttl).Err(), "failed to cache stats")
}

func (c *redisStatsCache) Invalidate(ctx context.Context) error {
	return errors.Wrap(c.client.Del(ctx, statsKey).Err(), "failed to invalidate cached stats")
}

// noopStatsCache never hits.
type noopStatsCache struct{}

func (noopStatsCache) Get(context.Context) (*entity.PaymentStats, bool, error) {
	return nil, false, nil
}

func (noopStatsCache) Set(context.Context, *entity.PaymentStats) error {
	return nil
}

func (noopStatsCache) Invalidate(context.Context) error {
	return nil
}
