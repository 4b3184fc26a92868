package dto

import (
	"rezzy-api/modules/auth/entity"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the authorization code from the OAuth redirect.
type GoogleLoginRequest struct {
	Code string `json:"code" validate:"required"`
}

type WhitelistRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ===================== Response DTOs =====================

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Admin       bool      `json:"admin"`
	Whitelisted bool      `json:"whitelisted"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type WhitelistEntryResponse struct {
	Email   string `json:"email"`
	AddedAt string `json:"added_at"`
}

type PaginatedWhitelistResponse struct {
	Items      []WhitelistEntryResponse `json:"items"`
	TotalItems int                      `json:"total_items"`
	PageNumber int                      `json:"page_number"`
	PageSize   int                      `json:"page_size"`
}

// ===================== Mapper Functions =====================

func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Admin:       u.Admin,
		Whitelisted: u.Whitelisted,
	}
}

func ToWhitelistEntryResponse(e *entity.WhitelistEntry) WhitelistEntryResponse {
	return WhitelistEntryResponse{
		Email:   e.Email,
		AddedAt: e.CreatedAt.Format("2006-01-02"),
	}
}
