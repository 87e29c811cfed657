package usecase

import (
	"context"
	"encoding/json"
	"net/url"

	"taxi-dispatch/internal/data/entity"
	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/internal/dto/response"
	"taxi-dispatch/pkg/listing"

	"go.uber.org/zap"
)

type DriverService interface {
	List(ctx context.Context, query url.Values) (json.RawMessage, error)
	Get(ctx context.Context, id string) (json.RawMessage, error)
	Create(ctx context.Context, req *request.DriverRequest) (json.RawMessage, error)
	Update(ctx context.Context, id string, req *request.DriverUpdateRequest) (json.RawMessage, error)
	Delete(ctx context.Context, id string) (json.RawMessage, error)
	Available(ctx context.Context) ([]entity.Driver, error)
	View(ctx context.Context, q *request.DriverListQuery) (*response.DriverListResponse, error)
}

type driverService struct {
	api Backend
	log *zap.Logger
}

func NewDriverService(api Backend, log *zap.Logger) DriverService {
	return &driverService{
		api: api,
		log: log.With(zap.String("service", "driver")),
	}
}

func (s *driverService) List(ctx context.Context, query url.Values) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, "/drivers", query, callerToken(ctx), &out)
	return out, err
}

func (s *driverService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, itemPath("drivers", id), nil, callerToken(ctx), &out)
	return out, err
}

func (s *driverService) Create(ctx context.Context, req *request.DriverRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, "/drivers", callerToken(ctx), req, &out); err != nil {
		return nil, err
	}

	s.log.Info("Driver created", zap.String("license", req.LicenseNumber))
	return out, nil
}

func (s *driverService) Update(ctx context.Context, id string, req *request.DriverUpdateRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Put(ctx, itemPath("drivers", id), callerToken(ctx), req, &out)
	return out, err
}

func (s *driverService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Delete(ctx, itemPath("drivers", id), callerToken(ctx), &out); err != nil {
		return nil, err
	}

	s.log.Info("Driver deleted", zap.String("driver_id", id))
	return out, nil
}

func (s *driverService) Available(ctx context.Context) ([]entity.Driver, error) {
	drivers := []entity.Driver{}
	if err := s.api.Get(ctx, "/drivers/available", nil, callerToken(ctx), &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

var driverSorts = map[string]func(a, b entity.Driver) int{
	"lastName": func(a, b entity.Driver) int {
		return listing.CompareFold(a.LastName, b.LastName)
	},
	"firstName": func(a, b entity.Driver) int {
		return listing.CompareFold(a.FirstName, b.FirstName)
	},
	"status": func(a, b entity.Driver) int {
		return listing.CompareOrdered(a.Status, b.Status)
	},
	"licenseExpiryDate": func(a, b entity.Driver) int {
		return listing.CompareOptionalTime(a.LicenseExpiryDate, b.LicenseExpiryDate)
	},
}

func (s *driverService) View(ctx context.Context, q *request.DriverListQuery) (*response.DriverListResponse, error) {
	if q == nil {
		q = &request.DriverListQuery{}
	}

	var drivers []entity.Driver
	if err := s.api.Get(ctx, "/drivers", nil, callerToken(ctx), &drivers); err != nil {
		return nil, err
	}

	compare, ok := driverSorts[q.SortBy]
	if !ok {
		compare = driverSorts["lastName"]
	}

	page := listing.Apply(drivers, listing.Query[entity.Driver]{
		Search: q.Search,
		SearchFields: func(d entity.Driver) []string {
			return []string{d.FirstName, d.LastName, d.LicenseNumber, d.PhoneNumber, entity.Deref(d.Email)}
		},
		Filters: []func(entity.Driver) bool{
			listing.Equals(func(d entity.Driver) entity.DriverStatus { return d.Status }, q.Status),
		},
		Compare: compare,
		Desc:    q.Desc(),
		Page:    q.Page,
		PerPage: q.PerPage,
	})

	return &response.DriverListResponse{Page: page}, nil
}
