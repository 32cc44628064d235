package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mescontacts/config"
	"mescontacts/internal/domain/entity"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewStatsCache_DisabledIsNoop(t *testing.T) {
	cache := NewStatsCache(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Redis: &config.RedisConfig{Enabled: false}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, &entity.PaymentStats{TotalCount: 3}))

	stats, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, stats)
	assert.NoError(t, cache.Invalidate(ctx))
}

func TestRedisStatsCache_UnreachableServerReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	cache := NewRedisStatsCache(client, time.Minute)

	_, ok, err := cache.Get(context.Background())
	assert.False(t, ok)
	assert.ErrorContains(t, err, "failed to read cached stats")
}
