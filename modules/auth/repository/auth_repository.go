package repository

import (
	"context"
	"database/sql"

	"rezzy-api/core/database"
	"rezzy-api/core/logger"
	"rezzy-api/core/params"
	"rezzy-api/modules/auth/entity"

	"github.com/google/uuid"
)

// AuthRepository handles user and whitelist database operations
type AuthRepository struct {
	DB database.IDatabase
}

// NewAuthRepository creates a new repository instance
func NewAuthRepository(db database.IDatabase) *AuthRepository {
	return &AuthRepository{DB: db}
}

// AuthRepositoryInterface defines the repository contract
type AuthRepositoryInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	IsEmailWhitelisted(ctx context.Context, email string) (bool, error)
	AddWhitelistEmail(ctx context.Context, email string) (*entity.WhitelistEntry, error)
	RemoveWhitelistEmail(ctx context.Context, email string) (bool, error)
	ListWhitelist(ctx context.Context, queryParams params.QueryParams) ([]entity.WhitelistEntry, int, error)
}

const userColumns = `id, email, password, name, admin, whitelisted, created_at, updated_at`

// GetUserByEmail returns the user, or nil when no account exists.
func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByEmail", err)
		return nil, err
	}

	return &user, nil
}

func (r *AuthRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByID", err)
		return nil, err
	}

	return &user, nil
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (id, email, password, name, admin, whitelisted)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query,
		user.ID, user.Email, user.Password, user.Name, user.Admin, user.Whitelisted)
	if err != nil {
		logger.Error("AuthRepository:CreateUser", err)
		return nil, err
	}

	return &created, nil
}

// IsEmailWhitelisted checks the whitelist table directly.
func (r *AuthRepository) IsEmailWhitelisted(ctx context.Context, email string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM whitelist WHERE email = $1`, email)
	if err != nil {
		logger.Error("AuthRepository:IsEmailWhitelisted", err)
		return false, err
	}
	return count > 0, nil
}

// AddWhitelistEmail inserts the email and flips the flag on an existing
// account in the same call. Re-adding an email is a no-op.
func (r *AuthRepository) AddWhitelistEmail(ctx context.Context, email string) (*entity.WhitelistEntry, error) {
	query := `
		INSERT INTO whitelist (email)
		VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, created_at`

	var entry entity.WhitelistEntry
	if err := r.DB.GetContext(ctx, &entry, query, email); err != nil {
		logger.Error("AuthRepository:AddWhitelistEmail", err)
		return nil, err
	}

	if err := r.DB.ExecContext(ctx, `UPDATE users SET whitelisted = TRUE, updated_at = NOW() WHERE email = $1`, email); err != nil {
		logger.Error("AuthRepository:AddWhitelistEmail:UpdateUser", err)
		return nil, err
	}

	return &entry, nil
}

// RemoveWhitelistEmail deletes the entry and clears the account flag. Returns
// whether the entry existed.
func (r *AuthRepository) RemoveWhitelistEmail(ctx context.Context, email string) (bool, error) {
	var id int64
	err := r.DB.GetContext(ctx, &id, `DELETE FROM whitelist WHERE email = $1 RETURNING id`, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("AuthRepository:RemoveWhitelistEmail", err)
		return false, err
	}

	if err := r.DB.ExecContext(ctx, `UPDATE users SET whitelisted = FALSE, updated_at = NOW() WHERE email = $1`, email); err != nil {
		logger.Error("AuthRepository:RemoveWhitelistEmail:UpdateUser", err)
		return false, err
	}

	return true, nil
}

// ListWhitelist returns a page of entries, newest first.
func (r *AuthRepository) ListWhitelist(ctx context.Context, queryParams params.QueryParams) ([]entity.WhitelistEntry, int, error) {
	var total int
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM whitelist`); err != nil {
		logger.Error("AuthRepository:ListWhitelist:Count", err)
		return nil, 0, err
	}

	query := `SELECT id, email, created_at FROM whitelist ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var entries []entity.WhitelistEntry
	if err := r.DB.SelectContext(ctx, &entries, query, queryParams.PageSize, queryParams.Offset()); err != nil {
		logger.Error("AuthRepository:ListWhitelist", err)
		return nil, 0, err
	}

	return entries, total, nil
}
