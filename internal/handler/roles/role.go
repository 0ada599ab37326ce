package roles

import (
	"net/http"

	"user-admin/internal/api"
	"user-admin/internal/audit"
	"user-admin/internal/database"
	"user-admin/internal/middleware"
	"user-admin/internal/model"
	"user-admin/internal/service"
	"user-admin/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listRoles  = store.ListRoles
	createRole = store.CreateRole
)

func roleResponse(r *model.Role) api.RoleResponse {
	return api.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// @Summary     List roles
// @Description 依 ID 順序列出所有角色
// @Tags        roles
// @Produce     json
// @Success     200 {array} api.RoleResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /roles [get]
func ListRolesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		all, err := listRoles(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.RoleResponse, 0, len(all))
		for i := range all {
			resp = append(resp, roleResponse(&all[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a role
// @Description 建立新角色，名稱不可重複
// @Tags        roles
// @Accept      json
// @Produce     json
// @Param       request body api.CreateRoleRequest true "角色資料"
// @Success     201 {object} api.RoleResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /roles [post]
func CreateRoleHandler(db database.DB, rec *audit.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateRoleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		role, err := createRole(c.Request().Context(), db, &model.Role{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims); ok {
			rec.Record(claims.UserID, audit.ActionCreateRole, role.ID)
		}
		return c.JSON(http.StatusCreated, roleResponse(role))
	}
}
