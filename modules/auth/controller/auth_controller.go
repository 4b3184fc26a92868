package controller

import (
	"strings"

	"rezzy-api/core/constants"
	"rezzy-api/core/controller"
	"rezzy-api/core/errors"
	"rezzy-api/core/params"
	"rezzy-api/core/utils"
	"rezzy-api/modules/auth/dto"
	"rezzy-api/modules/auth/service"
	"rezzy-api/modules/auth/validator"

	"github.com/labstack/echo/v4"
)

// AuthController handles authentication and whitelist HTTP endpoints
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

// NewAuthController creates a new controller
func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

func (c *AuthController) getClaimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}
	return claims, nil
}

// Register handles POST /auth/register
// @Summary Create an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 200 {object} dto.AuthResponse
// @Failure 409 {object} errors.AppError
// @Router /public/auth/register [post]
func (c *AuthController) Register(ctx echo.Context) error {
	req := new(dto.RegisterRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidateRegisterRequest(req)
	if validationResult.HasError() {
		return c.UnprocessableEntity(errors.ErrInvalidInput, "Validation failed", validationResult)
	}

	result, appErr := c.AuthService.Register(ctx.Request().Context(), req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Account created")
}

// Login handles POST /auth/login
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	req := new(dto.LoginRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidateLoginRequest(req)
	if validationResult.HasError() {
		return c.UnprocessableEntity(errors.ErrInvalidInput, "Validation failed", validationResult)
	}

	result, appErr := c.AuthService.Login(ctx.Request().Context(), req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Logged in")
}

// GoogleLogin handles POST /auth/google
// @Summary Log in with a Google OAuth authorization code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleLoginRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/google [post]
func (c *AuthController) GoogleLogin(ctx echo.Context) error {
	req := new(dto.GoogleLoginRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Code == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Authorization code is required")
	}

	result, appErr := c.AuthService.GoogleLogin(ctx.Request().Context(), req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Logged in")
}

// Logout handles POST /auth/logout
// @Summary Revoke the current token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} controller.SuccessResponse
// @Router /private/auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return c.Unauthorized(errors.ErrUnauthorized, "Missing authorization header")
	}

	if appErr := c.AuthService.Logout(ctx.Request().Context(), token); appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Logged out")
}

// Me handles GET /auth/me
// @Summary Get the caller's profile
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Router /private/auth/me [get]
func (c *AuthController) Me(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.AuthService.Me(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Profile loaded")
}

// AddToWhitelist handles POST /admin/whitelist
// @Summary Allow an email to submit requests
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.WhitelistRequest true "Email to allow"
// @Success 200 {object} dto.WhitelistEntryResponse
// @Router /private/admin/whitelist [post]
func (c *AuthController) AddToWhitelist(ctx echo.Context) error {
	req := new(dto.WhitelistRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidateWhitelistRequest(req)
	if validationResult.HasError() {
		return c.UnprocessableEntity(errors.ErrInvalidInput, "Validation failed", validationResult)
	}

	result, appErr := c.AuthService.AddToWhitelist(ctx.Request().Context(), req.Email)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Email whitelisted")
}

// RemoveFromWhitelist handles DELETE /admin/whitelist/:email
// @Summary Revoke an email's access
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param email path string true "Email to remove"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/admin/whitelist/{email} [delete]
func (c *AuthController) RemoveFromWhitelist(ctx echo.Context) error {
	email := ctx.Param("email")
	if email == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Email is required")
	}

	if appErr := c.AuthService.RemoveFromWhitelist(ctx.Request().Context(), email); appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Email removed from whitelist")
}

// ListWhitelist handles GET /admin/whitelist
// @Summary List whitelisted emails
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PaginatedWhitelistResponse
// @Router /private/admin/whitelist [get]
func (c *AuthController) ListWhitelist(ctx echo.Context) error {
	queryParams := params.FromContext(ctx)

	result, appErr := c.AuthService.ListWhitelist(ctx.Request().Context(), queryParams)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Whitelist loaded")
}
