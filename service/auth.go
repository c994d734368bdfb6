package service

import (
	"Memo/config"
	"Memo/models"
	"Memo/pkg/jwt"
	"Memo/pkg/snowflake"
	"Memo/types"
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.UserResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error)
	Refresh(ctx context.Context, req *types.RefreshRequest) (*types.TokenResponse, error)
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Users, error)
	Create(ctx context.Context, user *models.Users) error
}

type AuthService struct {
	Config  *config.Config
	UserDAO UserStore
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.UserResponse, error) {
	existing, err := s.UserDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.Users{
		ID:           snowflake.GenID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	return &types.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := s.UserDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidLogin
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidLogin
	}

	return s.issueTokens(user.ID)
}

func (s *AuthService) Refresh(ctx context.Context, req *types.RefreshRequest) (*types.TokenResponse, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), jwt.TypeRefresh, req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidLogin
	}

	return s.issueTokens(claims.UserID)
}

func (s *AuthService) issueTokens(userID int64) (*types.TokenResponse, error) {
	secret := []byte(s.Config.Jwt.Secret)

	access, err := jwt.GenerateToken(secret, userID, jwt.TypeAccess, time.Duration(s.Config.Jwt.AccessExpire)*time.Second)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, userID, jwt.TypeRefresh, time.Duration(s.Config.Jwt.RefreshExpire)*time.Second)
	if err != nil {
		return nil, err
	}

	return &types.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}
