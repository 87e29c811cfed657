package usecase

import (
	"context"
	"encoding/json"
	"net/url"

	"taxi-dispatch/internal/dto/request"

	"go.uber.org/zap"
)

// AdminService manages operator accounts and reads the audit trail.
type AdminService interface {
	ListUsers(ctx context.Context) (json.RawMessage, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (json.RawMessage, error)
	UpdateUser(ctx context.Context, id string, req *request.UpdateUserRequest) (json.RawMessage, error)
	DeleteUser(ctx context.Context, id string) (json.RawMessage, error)
	SetTempPassword(ctx context.Context, id string, req *request.TempPasswordRequest) (json.RawMessage, error)

	AuditLogs(ctx context.Context, query url.Values) (json.RawMessage, error)
	AuditStats(ctx context.Context) (json.RawMessage, error)
}

type adminService struct {
	api Backend
	log *zap.Logger
}

func NewAdminService(api Backend, log *zap.Logger) AdminService {
	return &adminService{
		api: api,
		log: log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ListUsers(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, "/auth/users", nil, callerToken(ctx), &out)
	return out, err
}

func (s *adminService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, "/auth/users", callerToken(ctx), req, &out); err != nil {
		return nil, err
	}

	s.log.Info("User created", zap.String("email", req.Email), zap.Bool("is_admin", req.IsAdmin))
	return out, nil
}

func (s *adminService) UpdateUser(ctx context.Context, id string, req *request.UpdateUserRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Patch(ctx, itemPath("auth/users", id), callerToken(ctx), req, &out); err != nil {
		return nil, err
	}

	s.log.Info("User updated", zap.String("user_id", id))
	return out, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Delete(ctx, itemPath("auth/users", id), callerToken(ctx), &out); err != nil {
		return nil, err
	}

	s.log.Info("User deleted", zap.String("user_id", id))
	return out, nil
}

func (s *adminService) SetTempPassword(ctx context.Context, id string, req *request.TempPasswordRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, itemPath("auth/users", id, "temp-password"), callerToken(ctx), req, &out); err != nil {
		return nil, err
	}

	s.log.Info("Temporary password issued", zap.String("user_id", id))
	return out, nil
}

// auditQueryKeys are the filters the backend understands.
var auditQueryKeys = []string{"skip", "take", "action", "tableName", "userId"}

func (s *adminService) AuditLogs(ctx context.Context, query url.Values) (json.RawMessage, error) {
	forwarded := url.Values{}
	for _, key := range auditQueryKeys {
		if v := query.Get(key); v != "" {
			forwarded.Set(key, v)
		}
	}

	var out json.RawMessage
	err := s.api.Get(ctx, "/audit-logs", forwarded, callerToken(ctx), &out)
	return out, err
}

func (s *adminService) AuditStats(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, "/audit-logs/stats", nil, callerToken(ctx), &out)
	return out, err
}
