package controller

import (
	"rezzy-api/core/constants"
	"rezzy-api/core/controller"
	"rezzy-api/core/errors"
	"rezzy-api/core/params"
	"rezzy-api/core/utils"
	"rezzy-api/modules/notification/dto"
	"rezzy-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// NotificationController handles notification HTTP endpoints
type NotificationController struct {
	controller.BaseController
	NotificationService service.NotificationServiceInterface
}

// NewNotificationController creates a new controller
func NewNotificationController(svc service.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: svc,
	}
}

func (c *NotificationController) getClaimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
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

// Create handles POST /admin/notifications
// @Summary Deliver an availability alert
// @Description Called by the availability monitor when an opening is found for a user's request.
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Alert payload"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/admin/notifications [post]
func (c *NotificationController) Create(ctx echo.Context) error {
	req := new(dto.CreateNotificationRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.UserEmail == "" || req.Title == "" || req.Message == "" {
		return c.BadRequest(errors.ErrInvalidInput, "user_email, title and message are required")
	}

	if appErr := c.NotificationService.Create(ctx.Request().Context(), req); appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Notification delivered")
}

// GetMyNotifications handles GET /notifications
// @Summary List the caller's notifications
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PaginatedNotificationResponse
// @Router /private/notifications [get]
func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	queryParams := params.FromContext(ctx)
	result, appErr := c.NotificationService.GetMyNotifications(ctx.Request().Context(), claims.UserID, queryParams)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Notifications loaded")
}

// MarkAsRead handles POST /notifications/read
// @Summary Mark notifications read
// @Tags Notification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.MarkReadRequest true "Ids to mark read"
// @Success 200 {object} controller.SuccessResponse
// @Router /private/notifications/read [post]
func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	req := new(dto.MarkReadRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if appErr := c.NotificationService.MarkAsRead(ctx.Request().Context(), claims.UserID, req.IDs); appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Notifications marked read")
}

// MarkAllAsRead handles POST /notifications/read-all
// @Summary Mark every notification read
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} controller.SuccessResponse
// @Router /private/notifications/read-all [post]
func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	if appErr := c.NotificationService.MarkAllAsRead(ctx.Request().Context(), claims.UserID); appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Notifications marked read")
}

// CountUnread handles GET /notifications/unread-count
// @Summary Count unread notifications
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UnreadCountResponse
// @Router /private/notifications/unread-count [get]
func (c *NotificationController) CountUnread(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.NotificationService.CountUnread(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.AppErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Unread count loaded")
}
