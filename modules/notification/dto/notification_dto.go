package dto

import (
	"time"

	"rezzy-api/modules/notification/entity"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

// CreateNotificationRequest is posted by the availability monitor when it
// finds an opening for a user's request.
type CreateNotificationRequest struct {
	UserEmail string                 `json:"user_email" validate:"required,email"`
	Title     string                 `json:"title" validate:"required"`
	Message   string                 `json:"message" validate:"required"`
	Data      map[string]interface{} `json:"data"`
}

// MarkReadRequest lists notification ids to mark read.
type MarkReadRequest struct {
	IDs []string `json:"ids"`
}

// ===================== Response DTOs =====================

type NotificationResponse struct {
	ID        uuid.UUID              `json:"id"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

type PaginatedNotificationResponse struct {
	Items      []NotificationResponse `json:"items"`
	TotalItems int                    `json:"total_items"`
	PageNumber int                    `json:"page_number"`
	PageSize   int                    `json:"page_size"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

// ===================== Mapper Functions =====================

func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
