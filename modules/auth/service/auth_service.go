package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"rezzy-api/core/cache"
	"rezzy-api/core/config"
	"rezzy-api/core/errors"
	"rezzy-api/core/logger"
	"rezzy-api/core/params"
	"rezzy-api/core/utils"
	"rezzy-api/modules/auth/dto"
	"rezzy-api/modules/auth/entity"
	"rezzy-api/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AuthService handles account registration, login and the admin whitelist.
type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache *cache.Cache
}

// AuthServiceInterface defines the service contract
type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	GoogleLogin(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	AddToWhitelist(ctx context.Context, email string) (*dto.WhitelistEntryResponse, *errors.AppError)
	RemoveFromWhitelist(ctx context.Context, email string) *errors.AppError
	ListWhitelist(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedWhitelistResponse, *errors.AppError)
}

func NewAuthService(repo repository.AuthRepositoryInterface, c *cache.Cache) AuthServiceInterface {
	return &AuthService{repo: repo, cache: c}
}

// Register creates an account. The whitelisted flag is resolved from the
// whitelist table at creation time.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError) {
	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing account", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "An account with this email already exists", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", err)
	}

	whitelisted, err := s.repo.IsEmailWhitelisted(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check whitelist", err)
	}

	user := &entity.User{
		ID:          uuid.New(),
		Email:       req.Email,
		Password:    hashed,
		Name:        req.Name,
		Whitelisted: whitelisted,
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", err)
	}

	return s.issueToken(created)
}

// Login authenticates with email and password.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load account", err)
	}
	if user == nil || !utils.ComparePassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	return s.issueToken(user)
}

// GoogleLogin exchanges the OAuth authorization code, looks up the Google
// profile and finds or creates the matching account.
func (s *AuthService) GoogleLogin(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.AuthResponse, *errors.AppError) {
	cfg := config.Get()
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Google OAuth is not configured", nil)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	token, err := oauthConfig.Exchange(ctx, req.Code)
	if err != nil {
		logger.Error("AuthService:GoogleLogin:Exchange", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Failed to exchange authorization code", err)
	}

	userInfo, err := s.getGoogleUserInfo(ctx, token.AccessToken)
	if err != nil {
		logger.Error("AuthService:GoogleLogin:GetGoogleUserInfo", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch Google profile", err)
	}
	if userInfo.Email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Google profile has no email", nil)
	}

	user, err := s.repo.GetUserByEmail(ctx, userInfo.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load account", err)
	}

	if user == nil {
		// OAuth accounts never use the password path
		hashed, hashErr := utils.HashPassword(utils.GenerateRandomString(32))
		if hashErr != nil {
			logger.Error("AuthService:GoogleLogin:HashPassword", hashErr)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", hashErr)
		}

		whitelisted, wlErr := s.repo.IsEmailWhitelisted(ctx, userInfo.Email)
		if wlErr != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check whitelist", wlErr)
		}

		created, createErr := s.repo.CreateUser(ctx, &entity.User{
			ID:          uuid.New(),
			Email:       userInfo.Email,
			Password:    hashed,
			Name:        userInfo.Name,
			Whitelisted: whitelisted,
		})
		if createErr != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", createErr)
		}
		user = created
	}

	return s.issueToken(user)
}

// Logout blacklists the token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "Invalid token", err)
	}

	ttl := utils.TokenRemainingTTL(claims)
	if ttl <= 0 {
		return nil
	}

	if err := s.cache.AddToTokenBlacklist(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to log out", err)
	}
	return nil
}

// Me returns the caller's profile from the database, not the token, so
// whitelist changes show up without a fresh login.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load account", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Account not found", nil)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// AddToWhitelist allows an email to submit reservation requests.
func (s *AuthService) AddToWhitelist(ctx context.Context, email string) (*dto.WhitelistEntryResponse, *errors.AppError) {
	entry, err := s.repo.AddWhitelistEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add to whitelist", err)
	}

	resp := dto.ToWhitelistEntryResponse(entry)
	return &resp, nil
}

// RemoveFromWhitelist revokes the email's access.
func (s *AuthService) RemoveFromWhitelist(ctx context.Context, email string) *errors.AppError {
	found, err := s.repo.RemoveWhitelistEmail(ctx, email)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove from whitelist", err)
	}
	if !found {
		return errors.NewAppError(errors.ErrNotFound, "Email is not on the whitelist", nil)
	}
	return nil
}

// ListWhitelist returns a page of whitelist entries for the admin view.
func (s *AuthService) ListWhitelist(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedWhitelistResponse, *errors.AppError) {
	entries, total, err := s.repo.ListWhitelist(ctx, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list whitelist", err)
	}

	items := make([]dto.WhitelistEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.ToWhitelistEntryResponse(&entries[i]))
	}

	return &dto.PaginatedWhitelistResponse{
		Items:      items,
		TotalItems: total,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (s *AuthService) issueToken(user *entity.User) (*dto.AuthResponse, *errors.AppError) {
	accessToken, err := utils.GenerateToken(user.ID, user.Email, user.Admin, user.Whitelisted)
	if err != nil {
		logger.Error("AuthService:IssueToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate access token", err)
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		User:        dto.ToUserResponse(user),
	}, nil
}

// googleUserInfo is the subset of the Google userinfo payload we use.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// getGoogleUserInfo fetches the profile for an access token.
func (s *AuthService) getGoogleUserInfo(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user info: %s", string(body))
	}

	var userInfo googleUserInfo
	if err := json.Unmarshal(body, &userInfo); err != nil {
		return nil, err
	}
	return &userInfo, nil
}
