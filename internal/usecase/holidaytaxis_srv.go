package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"taxi-dispatch/internal/data/entity"
	"taxi-dispatch/internal/data/repository"
	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/internal/dto/response"
	"taxi-dispatch/pkg/backend"
	"taxi-dispatch/pkg/listing"
	"taxi-dispatch/pkg/token"
	"taxi-dispatch/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MsgReferenceRequired   = "Please enter the HolidayTaxis Booking Reference"
	MsgAllocationRequired  = "Booking must have both vehicle and driver assigned"
	MsgAlreadySent         = "Booking has already been sent to HolidayTaxis"
	msgSubmissionSucceeded = "Booking sent to HolidayTaxis"
)

type HolidayTaxisService interface {
	Queue(ctx context.Context, q *request.HolidayTaxisQueueQuery) (*response.HolidayTaxisQueueResponse, error)
	Send(ctx context.Context, bookingID, reference string) (*response.SubmissionResult, error)

	// Local submission log
	Submissions(ctx context.Context, q *request.SubmissionListQuery) (*listing.Page[*entity.Submission], error)
	SubmissionStats(ctx context.Context) (*entity.SubmissionStats, error)

	// Backend integration log
	Logs(ctx context.Context, query url.Values) (json.RawMessage, error)
	LogStats(ctx context.Context) (json.RawMessage, error)
}

type holidayTaxisService struct {
	api         Backend
	submissions repository.SubmissionRepository
	log         *zap.Logger
}

func NewHolidayTaxisService(api Backend, submissions repository.SubmissionRepository, log *zap.Logger) HolidayTaxisService {
	return &holidayTaxisService{
		api:         api,
		submissions: submissions,
		log:         log.With(zap.String("service", "holidaytaxis")),
	}
}

func (s *holidayTaxisService) Queue(ctx context.Context, q *request.HolidayTaxisQueueQuery) (*response.HolidayTaxisQueueResponse, error) {
	if q == nil {
		q = &request.HolidayTaxisQueueQuery{}
	}

	var allocated []entity.Booking
	query := url.Values{"status": {string(entity.BookingStatusAllocated)}}
	if err := s.api.Get(ctx, "/bookings", query, callerToken(ctx), &allocated); err != nil {
		return nil, err
	}

	ready := listing.Filter(allocated, "", nil, entity.Booking.ReadyForHolidayTaxis)
	today := now()

	page := listing.Apply(ready, listing.Query[entity.Booking]{
		Search:       q.Search,
		SearchFields: bookingSearchFields,
		Filters: []func(entity.Booking) bool{
			listing.Equals(func(b entity.Booking) entity.BookingType { return b.BookingType }, q.BookingType),
			datePreset(q.DatePreset, today),
			listing.IntRange(passengerCount, q.MinPassengers, q.MaxPassengers),
		},
		Compare: bookingSort(q.SortBy, "pickupDateTime"),
		Desc:    q.Desc(),
		Page:    q.Page,
		PerPage: q.PerPage,
	})

	return &response.HolidayTaxisQueueResponse{
		Page:  page,
		Stats: queueStats(ready, today),
	}, nil
}

// datePreset maps today, tomorrow and week onto pickup time windows in the
// local zone. Anything else disables the filter.
func datePreset(preset string, now time.Time) func(entity.Booking) bool {
	start := listing.StartOfDay(now.Local())

	switch preset {
	case "today":
		return listing.Between(pickupTime, start, listing.EndOfDay(start))
	case "tomorrow":
		tomorrow := start.AddDate(0, 0, 1)
		return listing.Between(pickupTime, tomorrow, listing.EndOfDay(tomorrow))
	case "week":
		return listing.Between(pickupTime, start, start.AddDate(0, 0, 7))
	}
	return nil
}

func queueStats(bookings []entity.Booking, now time.Time) response.HolidayTaxisStats {
	isToday := datePreset("today", now)

	stats := response.HolidayTaxisStats{Total: len(bookings)}
	for _, b := range bookings {
		if isToday(b) {
			stats.TodayBookings++
		}
		stats.TotalPassengers += b.NumberOfPassengers
		stats.TotalLuggage += b.NumberOfLuggage
	}
	return stats
}

func (s *holidayTaxisService) Send(ctx context.Context, bookingID, reference string) (*response.SubmissionResult, error) {
	ref := utils.NormalizeBookingRef(reference)
	if ref == "" {
		return nil, &ValidationError{Field: "reference", Msg: MsgReferenceRequired}
	}
	if !utils.ValidateBookingRef(reference) {
		return nil, &ValidationError{Field: "reference", Msg: utils.BookingRefFormatMessage}
	}

	tok := callerToken(ctx)

	var booking entity.Booking
	if err := s.api.Get(ctx, itemPath("bookings", bookingID), nil, tok, &booking); err != nil {
		return nil, err
	}

	if !hasAllocation(booking) {
		return nil, &ValidationError{Field: "booking", Msg: MsgAllocationRequired}
	}
	if booking.SentToHolidayTaxis {
		return nil, &ValidationError{Field: "booking", Msg: MsgAlreadySent}
	}

	submission := &entity.Submission{
		ID:            uuid.New(),
		BookingID:     bookingID,
		PassengerName: booking.PassengerName,
		Reference:     ref,
		SubmittedBy:   submitter(ctx),
	}
	if booking.Driver != nil {
		submission.DriverName = booking.Driver.FullName()
	}
	if booking.Vehicle != nil {
		submission.VehicleReg = booking.Vehicle.RegistrationNumber
	}

	var updated json.RawMessage
	body := map[string]string{"holidayTaxisBookingRef": ref}
	sendErr := s.api.Post(ctx, itemPath("bookings", bookingID, "send-to-holidaytaxis"), tok, body, &updated)

	submission.AttemptedAt = now().UTC()
	if sendErr != nil {
		submission.Status = entity.SubmissionStatusFailed
		submission.Message, submission.HTTPStatusCode = describeFailure(sendErr)
	} else {
		submission.Status = entity.SubmissionStatusSuccess
		submission.Message = msgSubmissionSucceeded
		submission.HTTPStatusCode = 200
	}

	if err := s.submissions.Create(ctx, submission); err != nil {
		s.log.Error("Failed to record submission",
			zap.String("booking_id", bookingID),
			zap.String("reference", ref),
			zap.Error(err),
		)
	}

	if sendErr != nil {
		s.log.Warn("HolidayTaxis submission failed",
			zap.String("booking_id", bookingID),
			zap.String("reference", ref),
			zap.Error(sendErr),
		)
		return nil, sendErr
	}

	s.log.Info("Booking sent to HolidayTaxis",
		zap.String("booking_id", bookingID),
		zap.String("reference", ref),
	)

	var result any
	if len(updated) > 0 {
		result = updated
	}
	return &response.SubmissionResult{Booking: result, Submission: submission}, nil
}

func hasAllocation(b entity.Booking) bool {
	vehicle := b.Vehicle != nil || entity.Deref(b.VehicleID) != ""
	driver := b.Driver != nil || entity.Deref(b.DriverID) != ""
	return vehicle && driver
}

func submitter(ctx context.Context) string {
	claims, ok := token.FromContext(ctx)
	if !ok {
		return ""
	}
	if claims.Email != "" {
		return claims.Email
	}
	return claims.Subject
}

func describeFailure(err error) (string, int) {
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message, statusErr.StatusCode
	}
	if errors.Is(err, backend.ErrNoResponse) {
		return backend.ErrNoResponse.Error(), 0
	}
	return err.Error(), 0
}

func (s *holidayTaxisService) Submissions(ctx context.Context, q *request.SubmissionListQuery) (*listing.Page[*entity.Submission], error) {
	if q == nil {
		q = &request.SubmissionListQuery{}
	}

	filter := repository.SubmissionFilter{
		Search: strings.TrimSpace(q.Search),
	}
	if q.Status != "" && q.Status != "all" {
		filter.Status = entity.SubmissionStatus(q.Status)
	}

	page, perPage := listing.Normalize(q.Page, q.PerPage)

	total, err := s.submissions.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := &listing.Page[*entity.Submission]{
		Items:      []*entity.Submission{},
		Total:      int(total),
		Page:       page,
		PerPage:    perPage,
		TotalPages: listing.TotalPages(int(total), perPage),
	}
	if page > result.TotalPages {
		return result, nil
	}

	items, err := s.submissions.FindAll(ctx, filter, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	if items != nil {
		result.Items = items
	}
	return result, nil
}

func (s *holidayTaxisService) SubmissionStats(ctx context.Context) (*entity.SubmissionStats, error) {
	return s.submissions.Stats(ctx)
}

func (s *holidayTaxisService) Logs(ctx context.Context, query url.Values) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, "/logs/holidaytaxis", query, callerToken(ctx), &out)
	return out, err
}

func (s *holidayTaxisService) LogStats(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.Get(ctx, "/logs/holidaytaxis/stats", nil, callerToken(ctx), &out)
	return out, err
}
