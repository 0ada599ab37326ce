package auth

import (
	"net/http"
	"strings"
	"time"

	"user-admin/internal/api"
	"user-admin/internal/database"
	"user-admin/internal/service"
	"user-admin/internal/store"

	"github.com/labstack/echo/v4"
)

const accessTokenTTL = 24 * time.Hour

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌。停用帳號無法登入。
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		authUser, err := authenticateUser(c.Request().Context(), *user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(*authUser, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int(accessTokenTTL.Seconds()),
		})
	}
}
