package controller

import (
	"time"

	"rezzy-api/core/constants"
	"rezzy-api/core/controller"
	"rezzy-api/core/errors"
	"rezzy-api/core/params"
	"rezzy-api/core/utils"
	"rezzy-api/modules/rezzy/dto"
	"rezzy-api/modules/rezzy/service"
	"rezzy-api/modules/rezzy/validator"

	"github.com/labstack/echo/v4"
)

// RezzyController handles reservation request HTTP endpoints
type RezzyController struct {
	controller.BaseController
	RezzyService service.RezzyServiceInterface
}

// NewRezzyController creates a new controller
func NewRezzyController(svc service.RezzyServiceInterface) *RezzyController {
	return &RezzyController{
		BaseController: controller.NewBaseController(),
		RezzyService:   svc,
	}
}

// getClaimsFromContext extracts the JWT claims set by the auth middleware.
func (c *RezzyController) getClaimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
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

// MakeRezzy handles POST /rezzys
// @Summary Submit a reservation request
// @Description Validate and save the caller's reservation request. All field violations are reported at once.
// @Tags Rezzy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.MakeRezzyRequest true "Reservation request"
// @Success 200 {object} dto.RezzyResponse
// @Failure 422 {object} controller.ValidationResponse
// @Failure 409 {object} errors.AppError
// @Router /private/rezzys [post]
func (c *RezzyController) MakeRezzy(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	req := new(dto.MakeRezzyRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidateMakeRezzyRequest(req, time.Now())
	if validationResult.HasError() {
		return c.UnprocessableEntity(errors.ErrInvalidInput, "Validation failed", validationResult)
	}

	result, appErr := c.RezzyService.MakeRezzy(ctx.Request().Context(), claims.Email, req)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Rezzy has been made! You will be notified as soon as an opening appears.")
}

// GetMyRezzy handles GET /rezzys/me
// @Summary Get my active reservation request
// @Tags Rezzy
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.RezzyResponse
// @Failure 404 {object} errors.AppError
// @Router /private/rezzys/me [get]
func (c *RezzyController) GetMyRezzy(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.RezzyService.GetMyRezzy(ctx.Request().Context(), claims.Email)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// CancelRezzy handles DELETE /rezzys/me
// @Summary Cancel my active reservation request
// @Tags Rezzy
// @Security BearerAuth
// @Produce json
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/rezzys/me [delete]
func (c *RezzyController) CancelRezzy(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	if appErr := c.RezzyService.CancelRezzy(ctx.Request().Context(), claims.Email); appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Rezzy cancelled")
}

// ListRezzys handles GET /admin/rezzys
// @Summary List all active reservation requests
// @Tags Rezzy
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PaginatedRezzyResponse
// @Router /private/admin/rezzys [get]
func (c *RezzyController) ListRezzys(ctx echo.Context) error {
	queryParams := params.FromContext(ctx)

	result, appErr := c.RezzyService.ListRezzys(ctx.Request().Context(), queryParams)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// TimeOptions handles GET /rezzys/time-options
// @Summary List the half-hour time-of-day options for pickers
// @Tags Rezzy
// @Produce json
// @Success 200 {array} utils.TimeOption
// @Router /rezzys/time-options [get]
func (c *RezzyController) TimeOptions(ctx echo.Context) error {
	return c.SuccessResponse(ctx, utils.GenerateTimeOptions(), "Success")
}
