package usecase

import (
	"context"
	"encoding/json"

	"taxi-dispatch/internal/dto/response"

	"go.uber.org/zap"
)

// SyncService drives the GPS provider integration on the backend.
type SyncService interface {
	SyncVehicles(ctx context.Context) (json.RawMessage, error)
	Status(ctx context.Context) (*response.SyncStatus, error)
	SyncPositions(ctx context.Context) (json.RawMessage, error)
	FullSync(ctx context.Context) (json.RawMessage, error)
	Health(ctx context.Context) (json.RawMessage, error)
}

type syncService struct {
	api      Backend
	vehicles VehicleService
	log      *zap.Logger
}

func NewSyncService(api Backend, vehicles VehicleService, log *zap.Logger) SyncService {
	return &syncService{
		api:      api,
		vehicles: vehicles,
		log:      log.With(zap.String("service", "sync")),
	}
}

func (s *syncService) SyncVehicles(ctx context.Context) (json.RawMessage, error) {
	return s.post(ctx, "/wialon/sync-vehicles")
}

// Status reports the last known fleet counts. The backend keeps no sync
// history, so a readable fleet counts as a successful sync.
func (s *syncService) Status(ctx context.Context) (*response.SyncStatus, error) {
	vehicles, err := s.vehicles.Fleet(ctx)
	if err != nil {
		return nil, err
	}

	return &response.SyncStatus{
		TotalVehicles:   len(vehicles),
		OnlineVehicles:  countOnline(vehicles),
		LastSyncSuccess: true,
	}, nil
}

func (s *syncService) SyncPositions(ctx context.Context) (json.RawMessage, error) {
	return s.post(ctx, "/integration/sync/vehicle-positions")
}

func (s *syncService) FullSync(ctx context.Context) (json.RawMessage, error) {
	return s.post(ctx, "/integration/sync/full")
}

func (s *syncService) Health(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, "/integration/health", nil, callerToken(ctx), &out)
	return out, err
}

// post triggers a sync job and drops the cached fleet once it succeeds.
func (s *syncService) post(ctx context.Context, path string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, path, callerToken(ctx), nil, &out); err != nil {
		s.log.Warn("Sync failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	s.log.Info("Sync completed", zap.String("path", path))
	s.vehicles.InvalidateFleet(ctx)
	return out, nil
}
