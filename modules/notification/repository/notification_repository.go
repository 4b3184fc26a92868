package repository

import (
	"context"
	"database/sql"

	"rezzy-api/core/database"
	"rezzy-api/core/logger"
	"rezzy-api/core/params"
	"rezzy-api/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	DB database.IDatabase
}

// NewNotificationRepository creates a new repository instance
func NewNotificationRepository(db database.IDatabase) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

// NotificationRepositoryInterface defines the repository contract
type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByUserID(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) ([]entity.Notification, int, error)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	GetUserIDByEmail(ctx context.Context, email string) (uuid.UUID, bool, error)
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, title, message, type, data, is_read)
		VALUES (:id, :user_id, :title, :message, :type, :data, :is_read)`

	if _, err := r.DB.NamedExecContext(ctx, query, notification); err != nil {
		logger.Error("NotificationRepository:Create", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) ([]entity.Notification, int, error) {
	var total int
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM notifications WHERE user_id = $1`, userID); err != nil {
		logger.Error("NotificationRepository:GetByUserID:Count", err)
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, title, message, type, data, is_read, created_at, updated_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var notifications []entity.Notification
	if err := r.DB.SelectContext(ctx, &notifications, query, userID, queryParams.PageSize, queryParams.Offset()); err != nil {
		logger.Error("NotificationRepository:GetByUserID", err)
		return nil, 0, err
	}

	return notifications, total, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE notifications SET is_read = true, updated_at = NOW() WHERE user_id = ? AND id IN (?)`, userID, ids)
	if err != nil {
		return err
	}

	query = r.DB.SQLx().Rebind(query)
	if err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.Error("NotificationRepository:MarkAsRead", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true, updated_at = NOW() WHERE user_id = $1`
	if err := r.DB.ExecContext(ctx, query, userID); err != nil {
		logger.Error("NotificationRepository:MarkAllAsRead", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
	if err := r.DB.GetContext(ctx, &count, query, userID); err != nil {
		logger.Error("NotificationRepository:CountUnread", err)
		return 0, err
	}
	return count, nil
}

// GetUserIDByEmail resolves the recipient for a monitor finding, which is
// keyed by email on the request rather than by account id.
func (r *NotificationRepository) GetUserIDByEmail(ctx context.Context, email string) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := r.DB.GetContext(ctx, &id, `SELECT id FROM users WHERE email = $1`, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, false, nil
		}
		logger.Error("NotificationRepository:GetUserIDByEmail", err)
		return uuid.Nil, false, err
	}
	return id, true, nil
}
