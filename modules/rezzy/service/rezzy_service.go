package service

import (
	"context"
	"encoding/json"
	"time"

	"rezzy-api/core/cache"
	"rezzy-api/core/config"
	"rezzy-api/core/errors"
	"rezzy-api/core/logger"
	"rezzy-api/core/params"
	"rezzy-api/core/utils"
	"rezzy-api/modules/rezzy/dto"
	"rezzy-api/modules/rezzy/entity"
	"rezzy-api/modules/rezzy/repository"
	"rezzy-api/modules/watch"
)

// Shown when the per-user uniqueness constraint fires on submission.
const msgDuplicateRezzy = "You already have a Rezzy. Only one active request per user is allowed"

// RezzyService handles the reservation request lifecycle: submission
// (validate, normalize, persist, register watch), display and cancellation.
type RezzyService struct {
	repo       repository.RezzyRepositoryInterface
	cache      *cache.Cache
	dispatcher watch.DispatcherInterface
}

// RezzyServiceInterface defines the service contract
type RezzyServiceInterface interface {
	MakeRezzy(ctx context.Context, email string, req *dto.MakeRezzyRequest) (*dto.RezzyResponse, *errors.AppError)
	GetMyRezzy(ctx context.Context, email string) (*dto.RezzyResponse, *errors.AppError)
	CancelRezzy(ctx context.Context, email string) *errors.AppError
	ListRezzys(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedRezzyResponse, *errors.AppError)
}

func NewRezzyService(repo repository.RezzyRepositoryInterface, c *cache.Cache, dispatcher watch.DispatcherInterface) RezzyServiceInterface {
	return &RezzyService{
		repo:       repo,
		cache:      c,
		dispatcher: dispatcher,
	}
}

// MakeRezzy persists a validated submission. The caller runs the validator
// first; normalization assumes its invariants hold.
func (s *RezzyService) MakeRezzy(ctx context.Context, email string, req *dto.MakeRezzyRequest) (*dto.RezzyResponse, *errors.AppError) {
	rezzy := Normalize(req, email)
	rezzy.Reference = utils.GenerateID()

	created, err := s.repo.Create(ctx, rezzy)
	if err != nil {
		if err == repository.ErrDuplicateRezzy {
			return nil, errors.NewAppError(errors.ErrConflict, msgDuplicateRezzy, err)
		}
		logger.Error("RezzyService:MakeRezzy:Create", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save your Rezzy", err)
	}

	s.cacheRezzy(ctx, created)

	// Watch registration failures must not lose the saved request; the
	// monitor reconciles against the table on its own schedule.
	if err := s.dispatcher.RegisterWatch(ctx, created); err != nil {
		logger.Error("RezzyService:MakeRezzy:RegisterWatch", err, "reference", created.Reference)
	}

	return dto.ToRezzyResponse(created), nil
}

// GetMyRezzy returns the user's single active request.
func (s *RezzyService) GetMyRezzy(ctx context.Context, email string) (*dto.RezzyResponse, *errors.AppError) {
	if payload, err := s.cache.GetRezzy(ctx, email); err == nil {
		var cached rezzyCacheEntry
		if jsonErr := json.Unmarshal(payload, &cached); jsonErr == nil {
			return dto.ToRezzyResponse(cached.Rezzy), nil
		}
	} else if !cache.IsCacheMiss(err) {
		logger.Error("RezzyService:GetMyRezzy:Cache", err)
	}

	rezzy, err := s.repo.GetByUserEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load your Rezzy", err)
	}
	if rezzy == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "No active Rezzy found", nil)
	}

	s.cacheRezzy(ctx, rezzy)
	return dto.ToRezzyResponse(rezzy), nil
}

// CancelRezzy deletes the user's request and withdraws the watch registration.
func (s *RezzyService) CancelRezzy(ctx context.Context, email string) *errors.AppError {
	// look up first so the cancellation can carry the reference
	rezzy, err := s.repo.GetByUserEmail(ctx, email)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to load your Rezzy", err)
	}
	if rezzy == nil {
		return errors.NewAppError(errors.ErrNotFound, "No active Rezzy found", nil)
	}

	found, err := s.repo.DeleteByUserEmail(ctx, email)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to cancel your Rezzy", err)
	}
	if !found {
		return errors.NewAppError(errors.ErrNotFound, "No active Rezzy found", nil)
	}

	if err := s.cache.DeleteRezzy(ctx, email); err != nil {
		logger.Error("RezzyService:CancelRezzy:Cache", err)
	}
	if err := s.dispatcher.CancelWatch(ctx, email, rezzy.Reference); err != nil {
		logger.Error("RezzyService:CancelRezzy:CancelWatch", err, "reference", rezzy.Reference)
	}

	return nil
}

// ListRezzys returns a page of all active requests for the admin view.
func (s *RezzyService) ListRezzys(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedRezzyResponse, *errors.AppError) {
	rezzys, total, err := s.repo.List(ctx, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list requests", err)
	}

	items := make([]dto.RezzyResponse, 0, len(rezzys))
	for i := range rezzys {
		items = append(items, *dto.ToRezzyResponse(&rezzys[i]))
	}

	return &dto.PaginatedRezzyResponse{
		Items:      items,
		TotalItems: total,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

type rezzyCacheEntry struct {
	Rezzy *entity.Rezzy `json:"rezzy"`
}

func (s *RezzyService) cacheRezzy(ctx context.Context, rezzy *entity.Rezzy) {
	payload, err := json.Marshal(rezzyCacheEntry{Rezzy: rezzy})
	if err != nil {
		return
	}
	ttl := time.Duration(config.Get().RezzyCacheTTLMinutes) * time.Minute
	if err := s.cache.SetRezzy(ctx, rezzy.UserEmail, payload, ttl); err != nil {
		logger.Error("RezzyService:cacheRezzy", err)
	}
}
