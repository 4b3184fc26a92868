package middleware

import (
	"net/http"
	"strings"
	"time"

	"rezzy-api/core/cache"
	"rezzy-api/core/constants"
	"rezzy-api/core/controller"
	"rezzy-api/core/errors"
	"rezzy-api/core/logger"
	"rezzy-api/core/utils"

	"github.com/labstack/echo/v4"
)

// Middleware bundles the cross-cutting echo middlewares.
type Middleware struct {
	Cache *cache.Cache
}

func NewMiddleware(c *cache.Cache) *Middleware {
	return &Middleware{Cache: c}
}

// AuthMiddleware validates the Bearer token, rejects blacklisted tokens and
// stores the claims in the request context for controllers.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Missing or malformed authorization header")
			}
			token := strings.TrimPrefix(header, "Bearer ")

			blacklisted, err := m.Cache.IsTokenBlacklisted(c.Request().Context(), token)
			if err != nil {
				logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted", err)
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Could not verify token")
			}
			if blacklisted {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Token has been revoked")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// AdminMiddleware allows only admin users through. Must run after AuthMiddleware.
func (m *Middleware) AdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
			if !ok {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "User not authenticated")
			}
			if !claims.Admin {
				return controller.NewErrorResponse(http.StatusForbidden, errors.ErrForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}

// RequestLogger logs method, path, status and latency for every request.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}
