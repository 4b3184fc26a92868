package router

import (
	"rezzy-api/core/middleware"
	"rezzy-api/modules/rezzy/controller"

	"github.com/labstack/echo/v4"
)

// RezzyRouter handles reservation request routes
type RezzyRouter struct {
	RezzyController *controller.RezzyController
}

// NewRezzyRouter creates a new router
func NewRezzyRouter(rezzyController *controller.RezzyController) *RezzyRouter {
	return &RezzyRouter{
		RezzyController: rezzyController,
	}
}

// Setup registers reservation request routes
func (r *RezzyRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	// public helper for time pickers
	v1.GET("/rezzys/time-options", r.RezzyController.TimeOptions)

	privateRoutes := v1.Group("/private")

	rezzyRoutes := privateRoutes.Group("/rezzys", mw.AuthMiddleware())
	rezzyRoutes.POST("", r.RezzyController.MakeRezzy)
	rezzyRoutes.GET("/me", r.RezzyController.GetMyRezzy)
	rezzyRoutes.DELETE("/me", r.RezzyController.CancelRezzy)

	adminRoutes := privateRoutes.Group("/admin", mw.AuthMiddleware(), mw.AdminMiddleware())
	adminRoutes.GET("/rezzys", r.RezzyController.ListRezzys)
}
