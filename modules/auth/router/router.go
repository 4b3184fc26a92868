package router

import (
	"rezzy-api/core/middleware"
	"rezzy-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

// AuthRouter handles authentication and whitelist routes
type AuthRouter struct {
	AuthController *controller.AuthController
}

// NewAuthRouter creates a new router
func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		AuthController: authController,
	}
}

// Setup registers authentication routes
func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public/auth")
	publicRoutes.POST("/register", r.AuthController.Register)
	publicRoutes.POST("/login", r.AuthController.Login)
	publicRoutes.POST("/google", r.AuthController.GoogleLogin)

	privateRoutes := v1.Group("/private/auth", mw.AuthMiddleware())
	privateRoutes.POST("/logout", r.AuthController.Logout)
	privateRoutes.GET("/me", r.AuthController.Me)

	adminRoutes := v1.Group("/private/admin/whitelist", mw.AuthMiddleware(), mw.AdminMiddleware())
	adminRoutes.GET("", r.AuthController.ListWhitelist)
	adminRoutes.POST("", r.AuthController.AddToWhitelist)
	adminRoutes.DELETE("/:email", r.AuthController.RemoveFromWhitelist)
}
