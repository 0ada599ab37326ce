package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates to fns", func(t *testing.T) {
		f := &FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				require.Equal(t, "k", key)
				return redis.NewStringResult("v", nil)
			},
			SetFn: func(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
				require.Equal(t, time.Minute, ttl)
				return redis.NewStatusResult("OK", nil)
			},
			DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
				require.Equal(t, []string{"a", "b"}, keys)
				return redis.NewIntResult(2, nil)
			},
			CloseFn: func() error { return nil },
		}
		require.Equal(t, "v", f.Get(ctx, "k").Val())
		require.Equal(t, "OK", f.Set(ctx, "k", "v", time.Minute).Val())
		require.Equal(t, int64(2), f.Del(ctx, "a", "b").Val())
		require.NoError(t, f.Close())
	})

	t.Run("panics without fns", func(t *testing.T) {
		f := &FakeCache{}
		require.Panics(t, func() { f.Get(ctx, "k") })
		require.Panics(t, func() { f.Set(ctx, "k", "v", 0) })
		require.Panics(t, func() { f.Del(ctx, "k") })
		require.NoError(t, f.Close())
	})
}
