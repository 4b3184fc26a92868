package repository

import (
	"context"
	"database/sql"
	"errors"

	"rezzy-api/core/database"
	"rezzy-api/core/logger"
	"rezzy-api/core/params"
	"rezzy-api/modules/rezzy/entity"

	"github.com/lib/pq"
)

// ErrDuplicateRezzy signals the one-active-request-per-user constraint fired.
var ErrDuplicateRezzy = errors.New("user already has an active rezzy")

const uniqueUserConstraint = "rezzys_user_email_key"

// RezzyRepository handles reservation request database operations
type RezzyRepository struct {
	DB database.IDatabase
}

// NewRezzyRepository creates a new repository instance
func NewRezzyRepository(db database.IDatabase) *RezzyRepository {
	return &RezzyRepository{DB: db}
}

// RezzyRepositoryInterface defines the repository contract
type RezzyRepositoryInterface interface {
	Create(ctx context.Context, rezzy *entity.Rezzy) (*entity.Rezzy, error)
	GetByUserEmail(ctx context.Context, email string) (*entity.Rezzy, error)
	DeleteByUserEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, queryParams params.QueryParams) ([]entity.Rezzy, int, error)
}

const rezzyColumns = `id, user_email, reference, name, restaurant_name, opentable_url,
	       party_size, latitude, longitude,
	       date1, min_time1, ideal_time1, max_time1,
	       date2, min_time2, ideal_time2, max_time2,
	       date3, min_time3, ideal_time3, max_time3,
	       created_at`

// Create inserts the canonical record. Uniqueness per user is enforced by the
// database; a conflict comes back as ErrDuplicateRezzy.
func (r *RezzyRepository) Create(ctx context.Context, rezzy *entity.Rezzy) (*entity.Rezzy, error) {
	query := `
		INSERT INTO rezzys (user_email, reference, name, restaurant_name, opentable_url,
		                    party_size, latitude, longitude,
		                    date1, min_time1, ideal_time1, max_time1,
		                    date2, min_time2, ideal_time2, max_time2,
		                    date3, min_time3, ideal_time3, max_time3)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING ` + rezzyColumns

	var created entity.Rezzy
	err := r.DB.GetContext(ctx, &created, query,
		rezzy.UserEmail, rezzy.Reference, rezzy.Name, rezzy.RestaurantName, rezzy.OpentableURL,
		rezzy.PartySize, rezzy.Latitude, rezzy.Longitude,
		rezzy.Date1, rezzy.MinTime1, rezzy.IdealTime1, rezzy.MaxTime1,
		rezzy.Date2, rezzy.MinTime2, rezzy.IdealTime2, rezzy.MaxTime2,
		rezzy.Date3, rezzy.MinTime3, rezzy.IdealTime3, rezzy.MaxTime3)

	if err != nil {
		if IsUniqueViolation(err, uniqueUserConstraint) {
			return nil, ErrDuplicateRezzy
		}
		logger.Error("RezzyRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

// GetByUserEmail returns the user's active request, or nil when none exists.
func (r *RezzyRepository) GetByUserEmail(ctx context.Context, email string) (*entity.Rezzy, error) {
	query := `SELECT ` + rezzyColumns + ` FROM rezzys WHERE user_email = $1`

	var rezzy entity.Rezzy
	err := r.DB.GetContext(ctx, &rezzy, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RezzyRepository:GetByUserEmail", err)
		return nil, err
	}

	return &rezzy, nil
}

// DeleteByUserEmail removes the user's request. Returns whether a row existed.
func (r *RezzyRepository) DeleteByUserEmail(ctx context.Context, email string) (bool, error) {
	query := `DELETE FROM rezzys WHERE user_email = $1 RETURNING id`

	var id int64
	err := r.DB.GetContext(ctx, &id, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("RezzyRepository:DeleteByUserEmail", err)
		return false, err
	}
	return true, nil
}

// List returns a page of all active requests, newest first.
func (r *RezzyRepository) List(ctx context.Context, queryParams params.QueryParams) ([]entity.Rezzy, int, error) {
	var total int
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM rezzys`); err != nil {
		logger.Error("RezzyRepository:List:Count", err)
		return nil, 0, err
	}

	query := `SELECT ` + rezzyColumns + ` FROM rezzys ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var rezzys []entity.Rezzy
	if err := r.DB.SelectContext(ctx, &rezzys, query, queryParams.PageSize, queryParams.Offset()); err != nil {
		logger.Error("RezzyRepository:List", err)
		return nil, 0, err
	}

	return rezzys, total, nil
}

// IsUniqueViolation reports whether err is a postgres unique violation on the
// named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == constraint
}
