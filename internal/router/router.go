package router

import (
	"github.com/labstack/echo/v4"

	"user-admin/internal/audit"
	"user-admin/internal/cache"
	"user-admin/internal/database"
	"user-admin/internal/handler"
	"user-admin/internal/handler/auth"
	"user-admin/internal/handler/roles"
	"user-admin/internal/handler/users"
	"user-admin/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, rec *audit.Recorder) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth)

	// 使用者登入
	api.POST("/auth/login", auth.LoginHandler(db))

	// 管理員專屬 Users CRUD
	apiUsers := api.Group("/users", middleware.RequireAdmin)
	apiUsers.POST("", users.CreateUserHandler(db, rec))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/:user_id", users.GetUserHandler(db, rdb))
	apiUsers.PUT("/:user_id", users.UpdateUserHandler(db, rdb, rec))
	apiUsers.DELETE("/:user_id", users.DeleteUserHandler(db, rdb, rec))
	apiUsers.POST("/:user_id/reset_password", users.ResetUserPasswordHandler(db, rdb, rec))

	// 取得與更新當前使用者個人資料
	apiUsersMe := api.Group("/users/me", middleware.RequireAuth)
	apiUsersMe.GET("", users.GetMyUserHandler(db))
	apiUsersMe.PUT("", users.UpdateMyUserHandler(db, rdb))
	apiUsersMe.PATCH("/password", users.UpdateMyUserPasswordHandler(db))

	// 管理員專屬 Roles
	apiRoles := api.Group("/roles", middleware.RequireAdmin)
	apiRoles.GET("", roles.ListRolesHandler(db))
	apiRoles.POST("", roles.CreateRoleHandler(db, rec))
}
