package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"user-admin/internal/cache"
	"user-admin/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newPingCtx(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPingHandler(t *testing.T) {
	e := echo.New()

	t.Run("database unhealthy", func(t *testing.T) {
		db := &database.FakeDB{
			PingFn: func(context.Context) error { return errors.New("down") },
		}
		ctx, rec := newPingCtx(e)
		require.NoError(t, PingHandler(db, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
		rdb := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				cmd := redis.NewStringCmd(ctx)
				cmd.SetErr(errors.New("refused"))
				return cmd
			},
		}
		ctx, rec := newPingCtx(e)
		require.NoError(t, PingHandler(db, rdb)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("cache miss is healthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
		rdb := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				cmd := redis.NewStringCmd(ctx)
				cmd.SetErr(redis.Nil)
				return cmd
			},
		}
		ctx, rec := newPingCtx(e)
		require.NoError(t, PingHandler(db, rdb)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})

	t.Run("healthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
		rdb := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				cmd := redis.NewStringCmd(ctx)
				cmd.SetVal("1")
				return cmd
			},
		}
		ctx, rec := newPingCtx(e)
		require.NoError(t, PingHandler(db, rdb)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
