package service

import (
	"context"
	"time"

	coreEntity "rezzy-api/core/entity"
	"rezzy-api/core/errors"
	"rezzy-api/core/params"
	"rezzy-api/modules/notification/dto"
	"rezzy-api/modules/notification/entity"
	"rezzy-api/modules/notification/repository"

	"github.com/google/uuid"
)

// NotificationService handles the availability alert inbox.
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

// NotificationServiceInterface defines the service contract
type NotificationServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) *errors.AppError
	GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedNotificationResponse, *errors.AppError)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError
	CountUnread(ctx context.Context, userID uuid.UUID) (*dto.UnreadCountResponse, *errors.AppError)
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) NotificationServiceInterface {
	return &NotificationService{repo: repo}
}

// Create stores a monitor finding as an inbox alert for the request's owner.
func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) *errors.AppError {
	userID, found, err := s.repo.GetUserIDByEmail(ctx, req.UserEmail)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to resolve recipient", err)
	}
	if !found {
		return errors.NewAppError(errors.ErrNotFound, "No account for that email", nil)
	}

	notification := &entity.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   req.Title,
		Message: req.Message,
		Type:    entity.NotificationTypeAvailability,
		Data:    entity.JSONB(req.Data),
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to store notification", err)
	}
	return nil
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedNotificationResponse, *errors.AppError) {
	notifications, total, err := s.repo.GetByUserID(ctx, userID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load notifications", err)
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.ToNotificationResponse(&notifications[i]))
	}

	return &dto.PaginatedNotificationResponse{
		Items:      items,
		TotalItems: total,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError {
	if err := s.repo.MarkAsRead(ctx, userID, ids); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark notifications read", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark notifications read", err)
	}
	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (*dto.UnreadCountResponse, *errors.AppError) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to count notifications", err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}
