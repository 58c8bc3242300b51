package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookreview-backend/internal/domains/user/model"
	"bookreview-backend/internal/domains/user/repository"
	"bookreview-backend/pkg/jwt"
)

type userService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Manager
}

func NewUserService(userRepo repository.UserRepository, tokens *jwt.Manager) ServiceInterface {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// =====================================================
// REGISTRATION
// =====================================================

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Username: req.Username,
		Password: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

// =====================================================
// TOKEN ISSUANCE
// =====================================================

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID.String(), user.Username, user.Email, user.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := s.tokens.GenerateRefreshToken(user.ID.String(), user.Username, user.Email, user.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &model.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*model.AccessTokenResponse, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(claims.UserID, claims.Username, claims.Email, claims.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &model.AccessTokenResponse{Access: access}, nil
}

func (s *userService) Verify(token string) error {
	_, err := s.tokens.ValidateToken(token)
	return err
}

// =====================================================
// SELF-SERVICE ACCOUNT MUTATION
// =====================================================

func (s *userService) ChangePassword(ctx context.Context, callerID uuid.UUID, username string, req model.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	// Path-embedded username must match the authenticated identity.
	if user.ID != callerID {
		return model.ErrNotSelf
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
		return model.ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, string(hash))
}

func (s *userService) UpdateProfile(ctx context.Context, callerID uuid.UUID, username string, req model.UpdateProfileRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if user.ID != callerID {
		return nil, model.ErrNotSelf
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}
