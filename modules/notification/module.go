package notification

import (
	"rezzy-api/core/database"
	"rezzy-api/core/middleware"
	"rezzy-api/modules/notification/controller"
	"rezzy-api/modules/notification/repository"
	"rezzy-api/modules/notification/router"
	"rezzy-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the notification module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	rtr := router.NewNotificationRouter(ctrl)

	rtr.Setup(e, mw)
}
