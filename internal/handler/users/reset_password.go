package users

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"strconv"

	"user-admin/internal/api"
	"user-admin/internal/audit"
	"user-admin/internal/cache"
	"user-admin/internal/database"
	"user-admin/internal/middleware"
	"user-admin/internal/service"

	"github.com/labstack/echo/v4"
)

// @Summary     Reset user password
// @Description 由管理員重置特定使用者的密碼，並回傳新的隨機密碼
// @Tags        users
// @Produce     json
// @Param       user_id path int true "使用者 ID"
// @Success     200 {object} api.ResetUserPasswordResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id}/reset_password [post]
func ResetUserPasswordHandler(db database.DB, rdb cache.Cache, rec *audit.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		newPwd, err := generateRandomPassword(12)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to generate password"})
		}

		hash, err := hashPassword(newPwd)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		ctx := c.Request().Context()
		if err := updateUserPassword(ctx, db, id, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		rdb.Del(ctx, userCacheKey(id))
		if claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims); ok {
			rec.Record(claims.UserID, audit.ActionResetPassword, id)
		}
		return c.JSON(http.StatusOK, api.ResetUserPasswordResponse{NewPassword: newPwd})
	}
}

// generateRandomPassword 產生指定長度的隨機密碼，包含大寫、小寫、數字與符號
func generateRandomPassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!@#$%^&*()-_=+[]{}<>?"
	pwd := make([]byte, length)
	for i := 0; i < length; i++ {
		nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		pwd[i] = charset[nBig.Int64()]
	}
	return string(pwd), nil
}
