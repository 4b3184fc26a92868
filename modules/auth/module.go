package auth

import (
	"rezzy-api/core/cache"
	"rezzy-api/core/database"
	"rezzy-api/core/middleware"
	"rezzy-api/modules/auth/controller"
	"rezzy-api/modules/auth/repository"
	"rezzy-api/modules/auth/router"
	"rezzy-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.IDatabase, c *cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)
}
