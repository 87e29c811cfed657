package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/internal/dto/response"
	"taxi-dispatch/pkg/token"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Me(ctx context.Context) (*token.User, error)
	Profile(ctx context.Context) (json.RawMessage, error)
	ChangePassword(ctx context.Context, req *request.ChangePasswordRequest) (json.RawMessage, error)

	// First-run setup, reachable without a token
	SetupStatus(ctx context.Context) (json.RawMessage, error)
	CreateAdmin(ctx context.Context, req *request.CreateAdminRequest) (json.RawMessage, error)
}

type authService struct {
	api Backend
	log *zap.Logger
}

func NewAuthService(api Backend, log *zap.Logger) AuthService {
	return &authService{
		api: api,
		log: log.With(zap.String("service", "auth")),
	}
}

type loginResult struct {
	AccessToken string `json:"access_token"`
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	var result loginResult
	if err := s.api.Post(ctx, "/auth/login", "", req, &result); err != nil {
		s.log.Warn("Login rejected", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	if result.AccessToken == "" {
		return nil, fmt.Errorf("login response carried no access token")
	}

	user, err := token.UserFromToken(result.AccessToken)
	if err != nil {
		s.log.Error("Backend issued an undecodable token", zap.Error(err))
		return nil, fmt.Errorf("decode issued token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.Bool("is_admin", user.IsAdmin),
	)

	return &response.LoginResponse{
		Token: result.AccessToken,
		User:  user,
	}, nil
}

func (s *authService) Me(ctx context.Context) (*token.User, error) {
	claims, ok := token.FromContext(ctx)
	if !ok {
		return nil, token.ErrNoToken
	}
	return claims.User(), nil
}

func (s *authService) Profile(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, "/auth/profile", nil, callerToken(ctx), &out)
	return out, err
}

func (s *authService) ChangePassword(ctx context.Context, req *request.ChangePasswordRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, "/auth/change-password", callerToken(ctx), req, &out); err != nil {
		return nil, err
	}

	if claims, ok := token.FromContext(ctx); ok {
		s.log.Info("Password changed", zap.String("user_id", claims.Subject))
	}
	return out, nil
}

func (s *authService) SetupStatus(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, "/setup/status", nil, "", &out)
	return out, err
}

func (s *authService) CreateAdmin(ctx context.Context, req *request.CreateAdminRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, "/setup/create-admin", "", req, &out); err != nil {
		return nil, err
	}

	s.log.Info("Initial admin created", zap.String("email", req.Email))
	return out, nil
}
