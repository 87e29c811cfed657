package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"taxi-dispatch/internal/data/entity"
	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/internal/dto/response"
	"taxi-dispatch/pkg/backend"
	"taxi-dispatch/pkg/listing"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type BookingService interface {
	// Passthrough
	List(ctx context.Context, query url.Values) (json.RawMessage, error)
	Get(ctx context.Context, id string) (json.RawMessage, error)
	Create(ctx context.Context, req *request.CreateBookingRequest) (json.RawMessage, error)
	Update(ctx context.Context, id string, req *request.UpdateBookingRequest) (json.RawMessage, error)
	Delete(ctx context.Context, id string) (json.RawMessage, error)
	UpdateStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (json.RawMessage, error)
	Import(ctx context.Context, contentType string, body io.Reader) (*backend.RawResponse, error)

	// Dashboard table
	View(ctx context.Context, q *request.BookingListQuery) (*response.BookingListResponse, error)
	Export(ctx context.Context, q *request.BookingListQuery) ([]entity.Booking, error)

	// Allocation
	Allocate(ctx context.Context, id string, req *request.AllocateBookingRequest) (json.RawMessage, error)
	AutoAllocate(ctx context.Context, id string) (json.RawMessage, error)
	SuggestedVehicles(ctx context.Context, id string) ([]entity.VehicleSuggestion, error)
	AllocationOptions(ctx context.Context, id string, q *request.AllocationOptionsQuery) (*response.AllocationOptions, error)
	Allocated(ctx context.Context) ([]entity.Booking, error)
}

type bookingService struct {
	api Backend
	log *zap.Logger
}

func NewBookingService(api Backend, log *zap.Logger) BookingService {
	return &bookingService{
		api: api,
		log: log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) List(ctx context.Context, query url.Values) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, "/bookings", query, callerToken(ctx), &out)
	return out, err
}

func (s *bookingService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, itemPath("bookings", id), nil, callerToken(ctx), &out)
	return out, err
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, "/bookings", callerToken(ctx), req, &out); err != nil {
		s.log.Warn("Create booking rejected", zap.String("passenger", req.PassengerName), zap.Error(err))
		return nil, err
	}

	s.log.Info("Booking created", zap.String("passenger", req.PassengerName))
	return out, nil
}

func (s *bookingService) Update(ctx context.Context, id string, req *request.UpdateBookingRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Put(ctx, itemPath("bookings", id), callerToken(ctx), req, &out)
	return out, err
}

func (s *bookingService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Delete(ctx, itemPath("bookings", id), callerToken(ctx), &out); err != nil {
		return nil, err
	}

	s.log.Info("Booking deleted", zap.String("booking_id", id))
	return out, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (json.RawMessage, error) {
	if !entity.BookingStatus(req.Status).Valid() {
		return nil, &ValidationError{Field: "status", Msg: fmt.Sprintf("unknown booking status %q", req.Status)}
	}

	var out json.RawMessage
	if err := s.api.Put(ctx, itemPath("bookings", id, "status"), callerToken(ctx), req, &out); err != nil {
		return nil, err
	}

	s.log.Info("Booking status changed",
		zap.String("booking_id", id),
		zap.String("status", req.Status),
	)
	return out, nil
}

func (s *bookingService) Import(ctx context.Context, contentType string, body io.Reader) (*backend.RawResponse, error) {
	raw, err := s.api.Forward(ctx, http.MethodPost, "/bookings/import/csv", "", callerToken(ctx), contentType, body)
	if err != nil {
		s.log.Warn("Booking import rejected", zap.Error(err))
		return nil, err
	}

	s.log.Info("Bookings imported", zap.Int("status", raw.StatusCode))
	return raw, nil
}

func (s *bookingService) fetchAll(ctx context.Context, query url.Values) ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := s.api.Get(ctx, "/bookings", query, callerToken(ctx), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *bookingService) View(ctx context.Context, q *request.BookingListQuery) (*response.BookingListResponse, error) {
	bookings, err := s.fetchAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &response.BookingListResponse{
		Page:  listing.Apply(bookings, bookingQuery(q)),
		Stats: response.NewBookingStats(bookings),
	}, nil
}

// Export returns every booking the table would show, across all pages.
func (s *bookingService) Export(ctx context.Context, q *request.BookingListQuery) ([]entity.Booking, error) {
	bookings, err := s.fetchAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	lq := bookingQuery(q)
	rows := listing.Filter(bookings, lq.Search, lq.SearchFields, lq.Filters...)
	listing.SortStable(rows, lq.Compare, lq.Desc)

	s.log.Info("Bookings exported", zap.Int("rows", len(rows)))
	return rows, nil
}

func (s *bookingService) Allocate(ctx context.Context, id string, req *request.AllocateBookingRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, itemPath("bookings", id, "allocate"), callerToken(ctx), req, &out); err != nil {
		s.log.Warn("Allocation rejected",
			zap.String("booking_id", id),
			zap.String("vehicle_id", req.VehicleID),
			zap.String("driver_id", req.DriverID),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Info("Booking allocated",
		zap.String("booking_id", id),
		zap.String("vehicle_id", req.VehicleID),
		zap.String("driver_id", req.DriverID),
	)
	return out, nil
}

func (s *bookingService) AutoAllocate(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, itemPath("bookings", id, "auto-allocate"), callerToken(ctx), nil, &out); err != nil {
		return nil, err
	}

	s.log.Info("Booking auto-allocated", zap.String("booking_id", id))
	return out, nil
}

func (s *bookingService) SuggestedVehicles(ctx context.Context, id string) ([]entity.VehicleSuggestion, error) {
	vehicles := []entity.VehicleSuggestion{}
	if err := s.api.Get(ctx, itemPath("bookings", id, "suggested-vehicles"), nil, callerToken(ctx), &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// AllocationOptions loads suggested vehicles and available drivers in
// parallel. Either failure fails the whole call.
func (s *bookingService) AllocationOptions(ctx context.Context, id string, q *request.AllocationOptionsQuery) (*response.AllocationOptions, error) {
	tok := callerToken(ctx)

	var (
		vehicles []entity.VehicleSuggestion
		drivers  []entity.Driver
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.api.Get(gctx, itemPath("bookings", id, "suggested-vehicles"), nil, tok, &vehicles)
	})
	g.Go(func() error {
		return s.api.Get(gctx, "/drivers/available", nil, tok, &drivers)
	})

	if err := g.Wait(); err != nil {
		s.log.Warn("Failed to load allocation options", zap.String("booking_id", id), zap.Error(err))
		return nil, err
	}

	var vehicleSearch, driverSearch string
	if q != nil {
		vehicleSearch, driverSearch = q.VehicleSearch, q.DriverSearch
	}

	return &response.AllocationOptions{
		Vehicles: listing.Filter(vehicles, vehicleSearch, func(v entity.VehicleSuggestion) []string {
			return []string{v.RegistrationNumber, v.Make, v.Model}
		}),
		Drivers: listing.Filter(drivers, driverSearch, func(d entity.Driver) []string {
			return []string{d.FirstName, d.LastName, d.PhoneNumber}
		}),
	}, nil
}

func (s *bookingService) Allocated(ctx context.Context) ([]entity.Booking, error) {
	bookings, err := s.fetchAll(ctx, url.Values{"status": {string(entity.BookingStatusAllocated)}})
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []entity.Booking{}
	}
	return bookings, nil
}
