package rezzy

import (
	"rezzy-api/core/cache"
	"rezzy-api/core/database"
	"rezzy-api/core/middleware"
	"rezzy-api/modules/rezzy/controller"
	"rezzy-api/modules/rezzy/repository"
	"rezzy-api/modules/rezzy/router"
	"rezzy-api/modules/rezzy/service"
	"rezzy-api/modules/watch"

	"github.com/labstack/echo/v4"
)

// Init initializes the rezzy module and registers routes
func Init(e *echo.Echo, db database.IDatabase, c *cache.Cache, dispatcher watch.DispatcherInterface, mw *middleware.Middleware) {
	repo := repository.NewRezzyRepository(db)
	svc := service.NewRezzyService(repo, c, dispatcher)
	ctrl := controller.NewRezzyController(svc)
	rtr := router.NewRezzyRouter(ctrl)

	rtr.Setup(e, mw)
}
