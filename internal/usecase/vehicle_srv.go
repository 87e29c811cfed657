package usecase

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"taxi-dispatch/internal/data/entity"
	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/internal/dto/response"
	"taxi-dispatch/pkg/cache"
	"taxi-dispatch/pkg/listing"

	"go.uber.org/zap"
)

// FleetCacheKey holds the last full vehicle list fetched from the backend.
const FleetCacheKey = "taxi-dispatch:fleet:vehicles"

type VehicleService interface {
	List(ctx context.Context, query url.Values) (json.RawMessage, error)
	Get(ctx context.Context, id string) (json.RawMessage, error)
	Create(ctx context.Context, req *request.VehicleRequest) (json.RawMessage, error)
	Update(ctx context.Context, id string, req *request.VehicleUpdateRequest) (json.RawMessage, error)
	Delete(ctx context.Context, id string) (json.RawMessage, error)
	Available(ctx context.Context) (json.RawMessage, error)
	Nearest(ctx context.Context, req *request.NearestVehiclesRequest) (json.RawMessage, error)
	Suggest(ctx context.Context, bookingID string) (json.RawMessage, error)

	View(ctx context.Context, q *request.VehicleListQuery) (*response.VehicleListResponse, error)

	// Fleet returns every vehicle, served from the cache while it is fresh.
	Fleet(ctx context.Context) ([]entity.Vehicle, error)
	InvalidateFleet(ctx context.Context)
}

type vehicleService struct {
	api   Backend
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewVehicleService(api Backend, fleetCache cache.Cache, ttl time.Duration, log *zap.Logger) VehicleService {
	if fleetCache == nil {
		fleetCache = cache.Noop{}
	}
	return &vehicleService{
		api:   api,
		cache: fleetCache,
		ttl:   ttl,
		log:   log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) List(ctx context.Context, query url.Values) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, "/vehicles", query, callerToken(ctx), &out)
	return out, err
}

func (s *vehicleService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, itemPath("vehicles", id), nil, callerToken(ctx), &out)
	return out, err
}

func (s *vehicleService) Create(ctx context.Context, req *request.VehicleRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, "/vehicles", callerToken(ctx), req, &out); err != nil {
		return nil, err
	}

	s.log.Info("Vehicle created", zap.String("registration", req.RegistrationNumber))
	s.InvalidateFleet(ctx)
	return out, nil
}

func (s *vehicleService) Update(ctx context.Context, id string, req *request.VehicleUpdateRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Put(ctx, itemPath("vehicles", id), callerToken(ctx), req, &out); err != nil {
		return nil, err
	}

	s.InvalidateFleet(ctx)
	return out, nil
}

func (s *vehicleService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Delete(ctx, itemPath("vehicles", id), callerToken(ctx), &out); err != nil {
		return nil, err
	}

	s.log.Info("Vehicle deleted", zap.String("vehicle_id", id))
	s.InvalidateFleet(ctx)
	return out, nil
}

func (s *vehicleService) Available(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, "/vehicles/available", nil, callerToken(ctx), &out)
	return out, err
}

func (s *vehicleService) Nearest(ctx context.Context, req *request.NearestVehiclesRequest) (json.RawMessage, error) {
	query := url.Values{
		"lat":   {strconv.FormatFloat(req.Lat, 'f', -1, 64)},
		"lng":   {strconv.FormatFloat(req.Lng, 'f', -1, 64)},
		"limit": {strconv.Itoa(req.Limit)},
	}

	var out json.RawMessage
	err := s.api.Get(ctx, "/vehicles/nearest", query, callerToken(ctx), &out)
	return out, err
}

func (s *vehicleService) Suggest(ctx context.Context, bookingID string) (json.RawMessage, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, &ValidationError{Field: "bookingId", Msg: "bookingId is required"}
	}

	var out json.RawMessage
	err := s.api.Get(ctx, itemPath("bookings", bookingID, "suggested-vehicles"), nil, callerToken(ctx), &out)
	return out, err
}

var vehicleSorts = map[string]func(a, b entity.Vehicle) int{
	"registrationNumber": func(a, b entity.Vehicle) int {
		return listing.CompareFold(a.RegistrationNumber, b.RegistrationNumber)
	},
	"make": func(a, b entity.Vehicle) int {
		return listing.CompareFold(a.Make, b.Make)
	},
	"model": func(a, b entity.Vehicle) int {
		return listing.CompareFold(a.Model, b.Model)
	},
	"status": func(a, b entity.Vehicle) int {
		return listing.CompareOrdered(a.Status, b.Status)
	},
	"vehicleType": func(a, b entity.Vehicle) int {
		return listing.CompareOrdered(a.VehicleType, b.VehicleType)
	},
	"seatingCapacity": func(a, b entity.Vehicle) int {
		return listing.CompareOrdered(a.SeatingCapacity, b.SeatingCapacity)
	},
	"lastGpsPing": func(a, b entity.Vehicle) int {
		return listing.CompareOptionalTime(a.LastGpsPing, b.LastGpsPing)
	},
}

func (s *vehicleService) View(ctx context.Context, q *request.VehicleListQuery) (*response.VehicleListResponse, error) {
	if q == nil {
		q = &request.VehicleListQuery{}
	}

	vehicles, err := s.Fleet(ctx)
	if err != nil {
		return nil, err
	}

	var online func(entity.Vehicle) bool
	if q.Online != nil {
		want := *q.Online
		online = func(v entity.Vehicle) bool { return v.IsOnline == want }
	}

	compare, ok := vehicleSorts[q.SortBy]
	if !ok {
		compare = vehicleSorts["registrationNumber"]
	}

	page := listing.Apply(vehicles, listing.Query[entity.Vehicle]{
		Search: q.Search,
		SearchFields: func(v entity.Vehicle) []string {
			return []string{v.RegistrationNumber, v.Make, v.Model, v.WialonUnitID}
		},
		Filters: []func(entity.Vehicle) bool{
			listing.Equals(func(v entity.Vehicle) entity.VehicleStatus { return v.Status }, q.Status),
			listing.Equals(func(v entity.Vehicle) entity.VehicleType { return v.VehicleType }, q.VehicleType),
			online,
		},
		Compare: compare,
		Desc:    q.Desc(),
		Page:    q.Page,
		PerPage: q.PerPage,
	})

	return &response.VehicleListResponse{
		Page:   page,
		Online: countOnline(vehicles),
	}, nil
}

func countOnline(vehicles []entity.Vehicle) int {
	n := 0
	for _, v := range vehicles {
		if v.IsOnline {
			n++
		}
	}
	return n
}

func (s *vehicleService) Fleet(ctx context.Context) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle

	hit, err := s.cache.Get(ctx, FleetCacheKey, &vehicles)
	if err != nil {
		s.log.Warn("Fleet cache read failed", zap.Error(err))
	}
	if hit {
		return vehicles, nil
	}

	vehicles = nil
	if err := s.api.Get(ctx, "/vehicles", nil, callerToken(ctx), &vehicles); err != nil {
		return nil, err
	}
	if vehicles == nil {
		vehicles = []entity.Vehicle{}
	}

	if s.ttl > 0 {
		if err := s.cache.Set(ctx, FleetCacheKey, vehicles, s.ttl); err != nil {
			s.log.Warn("Fleet cache write failed", zap.Error(err))
		}
	}
	return vehicles, nil
}

func (s *vehicleService) InvalidateFleet(ctx context.Context) {
	if err := s.cache.Delete(ctx, FleetCacheKey); err != nil {
		s.log.Warn("Fleet cache invalidation failed", zap.Error(err))
	}
}
