package users

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"user-admin/internal/api"
	"user-admin/internal/audit"
	"user-admin/internal/cache"
	"user-admin/internal/database"
	"user-admin/internal/middleware"
	"user-admin/internal/model"
	"user-admin/internal/service"
	"user-admin/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword       = service.HashPassword
	authenticateUser   = service.AuthenticateUser
	createUser         = store.CreateUser
	getUserByID        = store.GetUserByID
	listUsers          = store.ListUsers
	updateUser         = store.UpdateUser
	updateUserPassword = store.UpdateUserPassword
	deleteUser         = store.DeleteUser
	countRolesByIDs    = store.CountRolesByIDs
)

const userCacheTTL = 5 * time.Minute

func userCacheKey(id int) string {
	return "user:" + strconv.Itoa(id)
}

func userResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		RoleIDs:   u.RoleIDs,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// normalizeEmail 將 Email 轉小寫並檢查格式，nil 表示未提供。
func normalizeEmail(email *string) (*string, bool) {
	if email == nil {
		return nil, true
	}
	lowered := strings.ToLower(*email)
	if _, err := mail.ParseAddress(lowered); err != nil {
		return nil, false
	}
	return &lowered, true
}

// validateRoleIDs 檢查序列中的角色 ID 是否都存在，重複 ID 允許。
func validateRoleIDs(c echo.Context, db database.DB, roleIDs []int) (bool, error) {
	if len(roleIDs) == 0 {
		return true, nil
	}
	unique := map[int]struct{}{}
	for _, id := range roleIDs {
		unique[id] = struct{}{}
	}
	count, err := countRolesByIDs(c.Request().Context(), db, roleIDs)
	if err != nil {
		return false, err
	}
	return count == len(unique), nil
}

// @Summary     Create a new user
// @Description 建立新帳號 (Email 會自動轉小寫，roleIds 必須都存在)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.CreateUserRequest true "使用者資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(db database.DB, rec *audit.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := api.NewCreateUserRequest()
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		email, ok := normalizeEmail(req.Email)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		ok, err := validateRoleIDs(c, db, req.RoleIDs)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "unknown role ids"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			FullName:     req.FullName,
			Email:        email,
			Phone:        req.Phone,
			PasswordHash: hash,
			IsActive:     req.IsActive,
			IsAdmin:      req.IsAdmin,
			RoleIDs:      req.RoleIDs,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims); ok {
			rec.Record(claims.UserID, audit.ActionCreateUser, user.ID)
		}
		return c.JSON(http.StatusCreated, userResponse(user))
	}
}

// @Summary     List users
// @Description 依 ID 順序列出所有使用者
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, userResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Description 透過 ID 查詢使用者，結果會進 Redis 短暫快取
// @Tags        users
// @Produce     json
// @Param       user_id path int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [get]
func GetUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		ctx := c.Request().Context()
		if cached, err := rdb.Get(ctx, userCacheKey(id)).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		user, err := getUserByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		resp := userResponse(user)
		if body, err := json.Marshal(resp); err == nil {
			rdb.Set(ctx, userCacheKey(id), body, userCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Update a user by ID
// @Description 以請求內容整份覆蓋使用者狀態：姓名、Email、電話、啟用狀態與角色序列。
// @Description roleIds 為空序列時會清除所有角色。
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user_id path int true "使用者 ID"
// @Param       request body api.UpdateUserRequest true "期望的使用者狀態"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [put]
func UpdateUserHandler(db database.DB, rdb cache.Cache, rec *audit.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		// 先建預設值再 Bind，省略的欄位保留預設 (isActive = true)
		req := api.NewUpdateUserRequest()
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		email, ok := normalizeEmail(req.Email)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		ok, err = validateRoleIDs(c, db, req.RoleIDs)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "unknown role ids"})
		}

		ctx := c.Request().Context()
		if _, err := getUserByID(ctx, db, id); err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		if err := updateUser(ctx, db, &model.User{
			ID:       id,
			FullName: req.FullName,
			Email:    email,
			Phone:    req.Phone,
			IsActive: req.IsActive,
			RoleIDs:  req.RoleIDs,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		rdb.Del(ctx, userCacheKey(id))
		if claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims); ok {
			rec.Record(claims.UserID, audit.ActionUpdateUser, id)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a user by ID
// @Description 根據使用者 ID 刪除帳號，角色關聯一併清除
// @Tags        users
// @Param       user_id path int true "使用者 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [delete]
func DeleteUserHandler(db database.DB, rdb cache.Cache, rec *audit.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		ctx := c.Request().Context()
		if err := deleteUser(ctx, db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		rdb.Del(ctx, userCacheKey(id))
		if claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims); ok {
			rec.Record(claims.UserID, audit.ActionDeleteUser, id)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
