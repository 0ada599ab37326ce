package roles

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"user-admin/internal/audit"
	"user-admin/internal/database"
	"user-admin/internal/middleware"
	"user-admin/internal/model"
	"user-admin/internal/service"
	"user-admin/internal/store"
	"user-admin/internal/worker"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

type syncPool struct{}

func (syncPool) Submit(t worker.Task) { t() }
func (syncPool) Stop()                {}

func restore() {
	listRoles = store.ListRoles
	createRole = store.CreateRole
}

func TestListRolesHandler(t *testing.T) {
	e := echo.New()

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listRoles = func(context.Context, database.DB) ([]model.Role, error) {
			return nil, errors.New("boom")
		}
		req := httptest.NewRequest(http.MethodGet, "/roles", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, ListRolesHandler(nil)(e.NewContext(req, rec)))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		desc := "can edit"
		listRoles = func(context.Context, database.DB) ([]model.Role, error) {
			return []model.Role{
				{ID: 1, Name: "admin", CreatedAt: time.Now()},
				{ID: 2, Name: "editor", Description: &desc, CreatedAt: time.Now()},
			}, nil
		}
		req := httptest.NewRequest(http.MethodGet, "/roles", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, ListRolesHandler(nil)(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"name":"admin"`)
		require.Contains(t, rec.Body.String(), `"description":"can edit"`)
	})

	t.Run("empty list stays array", func(t *testing.T) {
		t.Cleanup(restore)
		listRoles = func(context.Context, database.DB) ([]model.Role, error) {
			return nil, nil
		}
		req := httptest.NewRequest(http.MethodGet, "/roles", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, ListRolesHandler(nil)(e.NewContext(req, rec)))
		require.Equal(t, "[]\n", rec.Body.String())
	})
}

func TestCreateRoleHandler(t *testing.T) {
	e := echo.New()

	newCtx := func(body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/roles", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("bind error", func(t *testing.T) {
		e.Validator = &stubValidator{}
		ctx, rec := newCtx("{")
		require.NoError(t, CreateRoleHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newCtx(`{"name":""}`)
		require.NoError(t, CreateRoleHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createRole = func(context.Context, database.DB, *model.Role) (*model.Role, error) {
			return nil, errors.New("duplicate key")
		}
		ctx, rec := newCtx(`{"name":"admin"}`)
		require.NoError(t, CreateRoleHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success records audit", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createRole = func(_ context.Context, _ database.DB, r *model.Role) (*model.Role, error) {
			require.Equal(t, "auditor", r.Name)
			require.NotNil(t, r.Description)
			require.Equal(t, "read only", *r.Description)
			out := *r
			out.ID = 4
			out.CreatedAt = time.Now()
			return &out, nil
		}

		var audited []any
		auditDB := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				audited = args
				return pgconn.CommandTag{}, nil
			},
		}
		rec2 := audit.NewRecorder(auditDB, syncPool{})

		ctx, rec := newCtx(`{"name":"auditor","description":"read only"}`)
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 9, IsAdmin: true})
		require.NoError(t, CreateRoleHandler(nil, rec2)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":4`)

		require.Len(t, audited, 4)
		require.Equal(t, 9, audited[1])
		require.Equal(t, audit.ActionCreateRole, audited[2])
		require.Equal(t, 4, audited[3])
	})
}
