package router

import (
	"rezzy-api/core/middleware"
	"rezzy-api/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

// NotificationRouter handles notification routes
type NotificationRouter struct {
	NotificationController *controller.NotificationController
}

// NewNotificationRouter creates a new router
func NewNotificationRouter(notificationController *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{
		NotificationController: notificationController,
	}
}

// Setup registers notification routes
func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	notificationRoutes := v1.Group("/private/notifications", mw.AuthMiddleware())
	notificationRoutes.GET("", r.NotificationController.GetMyNotifications)
	notificationRoutes.GET("/unread-count", r.NotificationController.CountUnread)
	notificationRoutes.POST("/read", r.NotificationController.MarkAsRead)
	notificationRoutes.POST("/read-all", r.NotificationController.MarkAllAsRead)

	adminRoutes := v1.Group("/private/admin/notifications", mw.AuthMiddleware(), mw.AdminMiddleware())
	adminRoutes.POST("", r.NotificationController.Create)
}
