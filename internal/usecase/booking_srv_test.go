package usecase

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"taxi-dispatch/internal/data/entity"
	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/pkg/backend"

	"go.uber.org/zap"
)

func TestAllocationOptions_JoinsAndFilters(t *testing.T) {
	api := newFakeBackend().
		on("GET", "/bookings/b1/suggested-vehicles", []entity.VehicleSuggestion{
			{Vehicle: entity.Vehicle{ID: "v1", RegistrationNumber: "KDA 123A", Make: "Toyota", Model: "Hiace"}, Distance: 1.2},
			{Vehicle: entity.Vehicle{ID: "v2", RegistrationNumber: "KDB 456B", Make: "Nissan", Model: "Caravan"}, Distance: 3.4},
		}).
		on("GET", "/drivers/available", []entity.Driver{
			{ID: "d1", FirstName: "Joe", LastName: "Kamau", PhoneNumber: "0700111222"},
			{ID: "d2", FirstName: "Mary", LastName: "Wanjiru", PhoneNumber: "0700333444"},
		})
	svc := NewBookingService(api, zap.NewNop())

	all, err := svc.AllocationOptions(callerCtx(), "b1", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all.Vehicles) != 2 || len(all.Drivers) != 2 {
		t.Fatalf("expected both lists in full, got %d vehicles %d drivers", len(all.Vehicles), len(all.Drivers))
	}

	narrowed, _ := svc.AllocationOptions(callerCtx(), "b1", &request.AllocationOptionsQuery{
		VehicleSearch: "nissan",
		DriverSearch:  "333",
	})
	if len(narrowed.Vehicles) != 1 || narrowed.Vehicles[0].ID != "v2" {
		t.Fatalf("vehicle search kept %+v", narrowed.Vehicles)
	}
	if len(narrowed.Drivers) != 1 || narrowed.Drivers[0].ID != "d2" {
		t.Fatalf("driver search kept %+v", narrowed.Drivers)
	}
}

func TestAllocationOptions_EitherFailureFails(t *testing.T) {
	api := newFakeBackend().
		on("GET", "/bookings/b1/suggested-vehicles", []entity.VehicleSuggestion{}).
		fail("GET", "/drivers/available", backend.ErrNoResponse)
	svc := NewBookingService(api, zap.NewNop())

	if _, err := svc.AllocationOptions(callerCtx(), "b1", nil); !errors.Is(err, backend.ErrNoResponse) {
		t.Fatalf("expected ErrNoResponse, got %v", err)
	}
}

func sampleBookings() []entity.Booking {
	at := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	return []entity.Booking{
		{ID: "1", PassengerName: "Cem", Status: entity.BookingStatusPending, BookingType: entity.BookingTypeAirportToHotel, PickupDateTime: at.Add(3 * time.Hour), NumberOfPassengers: 2},
		{ID: "2", PassengerName: "ana", Status: entity.BookingStatusAllocated, BookingType: entity.BookingTypeHotelToAirport, PickupDateTime: at.Add(1 * time.Hour), NumberOfPassengers: 4, FlightNumber: ptr("KQ100")},
		{ID: "3", PassengerName: "Bob", Status: entity.BookingStatusCompleted, BookingType: entity.BookingTypeAirportToHotel, PickupDateTime: at.Add(2 * time.Hour), NumberOfPassengers: 1},
		{ID: "4", PassengerName: "Dina", Status: entity.BookingStatusCancelled, BookingType: entity.BookingTypeCustom, PickupDateTime: at.Add(26 * time.Hour), NumberOfPassengers: 6},
	}
}

func TestView_FiltersSortsAndCountsOverAll(t *testing.T) {
	api := newFakeBackend().on("GET", "/bookings", sampleBookings())
	svc := NewBookingService(api, zap.NewNop())

	view, err := svc.View(callerCtx(), &request.BookingListQuery{
		BookingType: "airport_to_hotel",
		SortRequest: request.SortRequest{SortBy: "passengerName"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.Total != 2 || view.Items[0].ID != "3" || view.Items[1].ID != "1" {
		t.Fatalf("unexpected items %+v", view.Items)
	}
	if view.Stats.Total != 4 || view.Stats.Pending != 1 || view.Stats.Cancelled != 1 {
		t.Fatalf("stats must cover the unfiltered set, got %+v", view.Stats)
	}

	day := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	sameDay, _ := svc.View(callerCtx(), &request.BookingListQuery{DateFrom: &day, DateTo: &day})
	if sameDay.Total != 3 || sameDay.Items[0].ID != "2" {
		t.Fatalf("date range kept %+v", sameDay.Items)
	}

	byFlight, _ := svc.View(callerCtx(), &request.BookingListQuery{Search: "kq1"})
	if byFlight.Total != 1 || byFlight.Items[0].ID != "2" {
		t.Fatalf("search by flight kept %+v", byFlight.Items)
	}
}

func TestExport_WritesEveryMatchingRow(t *testing.T) {
	api := newFakeBackend().on("GET", "/bookings", sampleBookings())
	svc := NewBookingService(api, zap.NewNop())

	rows, err := svc.Export(callerCtx(), &request.BookingListQuery{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 1},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("export must ignore pagination, got %d rows", len(rows))
	}

	var buf bytes.Buffer
	if err := WriteBookingsCSV(&buf, rows); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv back: %v", err)
	}
	if len(records) != 5 || records[0][0] != "Passenger Name" || records[0][8] != "Status" {
		t.Fatalf("unexpected csv %v", records)
	}
	// Default order is pickup time ascending.
	if records[1][0] != "ana" || records[1][4] != "2026-07-01 10:00" || records[1][7] != "KQ100" {
		t.Fatalf("unexpected first row %v", records[1])
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	api := newFakeBackend()
	svc := NewBookingService(api, zap.NewNop())

	_, err := svc.UpdateStatus(callerCtx(), "b1", &request.UpdateBookingStatusRequest{Status: "teleported"})
	if _, ok := AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(api.calls) != 0 {
		t.Fatalf("unknown status must not reach the backend")
	}
}

func TestAllocated_AsksForAllocatedStatus(t *testing.T) {
	api := newFakeBackend()
	svc := NewBookingService(api, zap.NewNop())

	bookings, err := svc.Allocated(callerCtx())
	if err != nil || bookings == nil {
		t.Fatalf("expected empty list, got %v (%v)", bookings, err)
	}
	call, _ := api.last("GET", "/bookings")
	if call.Query.Get("status") != "allocated" {
		t.Fatalf("query = %v", call.Query)
	}
}
