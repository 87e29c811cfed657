package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"taxi-dispatch/internal/data/entity"
	"taxi-dispatch/internal/data/repository"
	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/pkg/backend"
	"taxi-dispatch/pkg/token"
	"taxi-dispatch/pkg/utils"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func callerCtx() context.Context {
	ctx := utils.SetTokenContext(context.Background(), "tok")
	return token.InjectClaims(ctx, &token.Claims{
		Email:            "ops@example.com",
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: "user-1"},
	})
}

func allocatedBooking(id string) entity.Booking {
	return entity.Booking{
		ID:                 id,
		PassengerName:      "Ana Silva",
		NumberOfPassengers: 2,
		NumberOfLuggage:    3,
		Status:             entity.BookingStatusAllocated,
		VehicleID:          ptr("v1"),
		Vehicle:            &entity.Vehicle{ID: "v1", RegistrationNumber: "KDA 123A"},
		DriverID:           ptr("d1"),
		Driver:             &entity.Driver{ID: "d1", FirstName: "Joe", LastName: "Kamau"},
	}
}

func TestSend_RejectsBadReferenceBeforeAnyCall(t *testing.T) {
	api := newFakeBackend()
	svc := NewHolidayTaxisService(api, repository.NewMemorySubmissionRepository(), zap.NewNop())

	cases := map[string]string{
		"":              MsgReferenceRequired,
		"   ":           MsgReferenceRequired,
		"BAHOL26783177": utils.BookingRefFormatMessage,
		"BAHO-26783177": utils.BookingRefFormatMessage,
		"BAHOL-2678317": utils.BookingRefFormatMessage,
	}

	for ref, wantMsg := range cases {
		_, err := svc.Send(callerCtx(), "b1", ref)
		ve, ok := AsValidation(err)
		if !ok || ve.Msg != wantMsg {
			t.Fatalf("Send(%q) error = %v, want %q", ref, err, wantMsg)
		}
	}

	if len(api.calls) != 0 {
		t.Fatalf("expected no backend calls, got %d", len(api.calls))
	}
}

func TestSend_RequiresVehicleAndDriver(t *testing.T) {
	booking := allocatedBooking("b1")
	booking.Driver, booking.DriverID = nil, nil

	api := newFakeBackend().on("GET", "/bookings/b1", booking)
	svc := NewHolidayTaxisService(api, repository.NewMemorySubmissionRepository(), zap.NewNop())

	_, err := svc.Send(callerCtx(), "b1", "BAHOL-26783177")
	ve, ok := AsValidation(err)
	if !ok || ve.Msg != MsgAllocationRequired {
		t.Fatalf("expected allocation error, got %v", err)
	}
	if api.count("POST", "/bookings/b1/send-to-holidaytaxis") != 0 {
		t.Fatalf("booking without driver must not be sent")
	}
}

func TestSend_SuccessNormalizesAndRecords(t *testing.T) {
	api := newFakeBackend().
		on("GET", "/bookings/b1", allocatedBooking("b1")).
		on("POST", "/bookings/b1/send-to-holidaytaxis", map[string]any{"id": "b1", "sentToHolidayTaxis": true})
	repo := repository.NewMemorySubmissionRepository()
	svc := NewHolidayTaxisService(api, repo, zap.NewNop())

	result, err := svc.Send(callerCtx(), "b1", "  bahol-26783177 ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	call, _ := api.last("POST", "/bookings/b1/send-to-holidaytaxis")
	body, _ := call.Body.(map[string]string)
	if body["holidayTaxisBookingRef"] != "BAHOL-26783177" || call.Token != "tok" {
		t.Fatalf("unexpected send call %+v", call)
	}

	sub := result.Submission
	if sub.Status != entity.SubmissionStatusSuccess || sub.Reference != "BAHOL-26783177" ||
		sub.DriverName != "Joe Kamau" || sub.VehicleReg != "KDA 123A" || sub.SubmittedBy != "ops@example.com" {
		t.Fatalf("unexpected submission %+v", sub)
	}

	stats, _ := repo.Stats(context.Background())
	if stats.Total != 1 || stats.Success != 1 {
		t.Fatalf("expected one recorded success, got %+v", stats)
	}
}

func TestSend_BackendRejectionIsRecordedAndReturned(t *testing.T) {
	rejection := &backend.StatusError{StatusCode: 409, Message: "Reference already used"}
	api := newFakeBackend().
		on("GET", "/bookings/b1", allocatedBooking("b1")).
		fail("POST", "/bookings/b1/send-to-holidaytaxis", rejection)
	repo := repository.NewMemorySubmissionRepository()
	svc := NewHolidayTaxisService(api, repo, zap.NewNop())

	_, err := svc.Send(callerCtx(), "b1", "BAHOL-26783177")
	if !errors.Is(err, rejection) {
		t.Fatalf("expected backend rejection, got %v", err)
	}

	rows, _ := repo.FindAll(context.Background(), repository.SubmissionFilter{}, 10, 0)
	if len(rows) != 1 {
		t.Fatalf("expected one recorded attempt, got %d", len(rows))
	}
	if rows[0].Status != entity.SubmissionStatusFailed || rows[0].HTTPStatusCode != 409 || rows[0].Message != "Reference already used" {
		t.Fatalf("unexpected failed submission %+v", rows[0])
	}
}

func TestQueue_KeepsReadyBookingsAndAppliesPreset(t *testing.T) {
	fixed := time.Date(2026, 6, 10, 10, 0, 0, 0, time.Local)
	restore := now
	now = func() time.Time { return fixed }
	defer func() { now = restore }()

	today := allocatedBooking("today")
	today.PickupDateTime = fixed.Add(2 * time.Hour)

	tomorrow := allocatedBooking("tomorrow")
	tomorrow.PickupDateTime = fixed.Add(24 * time.Hour)
	tomorrow.NumberOfPassengers = 5

	sent := allocatedBooking("sent")
	sent.PickupDateTime = fixed
	sent.SentToHolidayTaxis = true

	noDriver := allocatedBooking("no-driver")
	noDriver.DriverID = nil

	api := newFakeBackend().on("GET", "/bookings", []entity.Booking{today, tomorrow, sent, noDriver})
	svc := NewHolidayTaxisService(api, repository.NewMemorySubmissionRepository(), zap.NewNop())

	all, err := svc.Queue(callerCtx(), &request.HolidayTaxisQueueQuery{DatePreset: "all"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if all.Total != 2 || all.Stats.Total != 2 || all.Stats.TodayBookings != 1 || all.Stats.TotalPassengers != 7 {
		t.Fatalf("unexpected queue %+v", all)
	}

	call, _ := api.last("GET", "/bookings")
	if call.Query.Get("status") != "allocated" {
		t.Fatalf("queue must ask for allocated bookings, got %v", call.Query)
	}

	onlyToday, _ := svc.Queue(callerCtx(), &request.HolidayTaxisQueueQuery{DatePreset: "today"})
	if onlyToday.Total != 1 || onlyToday.Items[0].ID != "today" {
		t.Fatalf("today preset kept %+v", onlyToday.Items)
	}

	bigGroups, _ := svc.Queue(callerCtx(), &request.HolidayTaxisQueueQuery{MinPassengers: ptr(3)})
	if bigGroups.Total != 1 || bigGroups.Items[0].ID != "tomorrow" {
		t.Fatalf("passenger filter kept %+v", bigGroups.Items)
	}

	byPassengersDesc, _ := svc.Queue(callerCtx(), &request.HolidayTaxisQueueQuery{
		SortRequest: request.SortRequest{SortBy: "passengers", Order: "desc"},
	})
	if byPassengersDesc.Items[0].ID != "tomorrow" {
		t.Fatalf("expected largest group first, got %s", byPassengersDesc.Items[0].ID)
	}
}

func TestSubmissions_Paginated(t *testing.T) {
	repo := repository.NewMemorySubmissionRepository()
	for i := range 12 {
		repo.Create(context.Background(), &entity.Submission{
			Reference:   fmt.Sprintf("BAHOL-%08d", i),
			Status:      entity.SubmissionStatusSuccess,
			AttemptedAt: time.Date(2026, 1, 1, 0, i, 0, 0, time.UTC),
		})
	}
	svc := NewHolidayTaxisService(newFakeBackend(), repo, zap.NewNop())

	page, err := svc.Submissions(context.Background(), &request.SubmissionListQuery{
		PaginatedRequest: request.PaginatedRequest{Page: 2, PerPage: 5},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page.Items) != 5 || page.Total != 12 || page.TotalPages != 3 {
		t.Fatalf("unexpected page total=%d pages=%d items=%d", page.Total, page.TotalPages, len(page.Items))
	}
	// Newest first: page 2 starts at the 6th most recent attempt.
	if page.Items[0].Reference != "BAHOL-00000006" {
		t.Fatalf("unexpected first item %s", page.Items[0].Reference)
	}
}

func TestSubmissions_PageFarPastTheEnd(t *testing.T) {
	repo := repository.NewMemorySubmissionRepository()
	repo.Create(context.Background(), &entity.Submission{
		Reference:   "BAHOL-00000001",
		Status:      entity.SubmissionStatusSuccess,
		AttemptedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	svc := NewHolidayTaxisService(newFakeBackend(), repo, zap.NewNop())

	page, err := svc.Submissions(context.Background(), &request.SubmissionListQuery{
		PaginatedRequest: request.PaginatedRequest{Page: 1 << 62, PerPage: 4},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page.Items) != 0 || page.Total != 1 || page.TotalPages != 1 {
		t.Fatalf("unexpected page total=%d pages=%d items=%d", page.Total, page.TotalPages, len(page.Items))
	}
}
