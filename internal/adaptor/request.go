package adaptor

import (
	"encoding/json"
	"errors"
	"hash/fnv"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"taxi-dispatch/internal/dto/request"
	"taxi-dispatch/pkg/utils"
)

const (
	maxBodyBytes   = 1 << 20
	maxUploadBytes = 10 << 20

	FilterSignatureHeader = "X-Filter-Signature"
)

// bindJSON decodes and validates the body into dst. It answers 400 itself
// and returns false when either step fails.
func bindJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

// Keys that move within one result set rather than changing it.
var nonFilterKeys = []string{"page", "perPage", "sortBy", "order"}

// setFilterSignature hashes every filter parameter so a client can tell
// that the result set changed and go back to page 1.
func setFilterSignature(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	keys := make([]string, 0, len(query))
	for key := range query {
		if !slices.Contains(nonFilterKeys, key) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	h := fnv.New64a()
	for _, key := range keys {
		values := slices.Clone(query[key])
		slices.Sort(values)
		h.Write([]byte(key))
		h.Write([]byte{0})
		h.Write([]byte(strings.Join(values, "\x1f")))
		h.Write([]byte{0})
	}
	w.Header().Set(FilterSignatureHeader, strconv.FormatUint(h.Sum64(), 16))
}

func parsePaging(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	return request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("perPage"), 10),
	}
}

func parseSort(r *http.Request) request.SortRequest {
	query := r.URL.Query()
	return request.SortRequest{
		SortBy: strings.TrimSpace(query.Get("sortBy")),
		Order:  strings.ToLower(strings.TrimSpace(query.Get("order"))),
	}
}

func parseBookingListQuery(r *http.Request) *request.BookingListQuery {
	query := r.URL.Query()
	return &request.BookingListQuery{
		PaginatedRequest: parsePaging(r),
		SortRequest:      parseSort(r),
		Search:           query.Get("search"),
		Status:           query.Get("status"),
		BookingType:      query.Get("bookingType"),
		DateFrom:         utils.ParseOptionalDate(query.Get("dateFrom"), time.Local),
		DateTo:           utils.ParseOptionalDate(query.Get("dateTo"), time.Local),
		MinPassengers:    utils.ParseOptionalInt(query.Get("minPassengers")),
		MaxPassengers:    utils.ParseOptionalInt(query.Get("maxPassengers")),
	}
}

func parseQueueQuery(r *http.Request) *request.HolidayTaxisQueueQuery {
	query := r.URL.Query()
	return &request.HolidayTaxisQueueQuery{
		PaginatedRequest: parsePaging(r),
		SortRequest:      parseSort(r),
		Search:           query.Get("search"),
		BookingType:      query.Get("bookingType"),
		DatePreset:       query.Get("date"),
		MinPassengers:    utils.ParseOptionalInt(query.Get("minPassengers")),
		MaxPassengers:    utils.ParseOptionalInt(query.Get("maxPassengers")),
	}
}

func parseVehicleListQuery(r *http.Request) *request.VehicleListQuery {
	query := r.URL.Query()
	return &request.VehicleListQuery{
		PaginatedRequest: parsePaging(r),
		SortRequest:      parseSort(r),
		Search:           query.Get("search"),
		Status:           query.Get("status"),
		VehicleType:      query.Get("vehicleType"),
		Online:           utils.ParseOptionalBool(query.Get("online")),
	}
}

func parseDriverListQuery(r *http.Request) *request.DriverListQuery {
	query := r.URL.Query()
	return &request.DriverListQuery{
		PaginatedRequest: parsePaging(r),
		SortRequest:      parseSort(r),
		Search:           query.Get("search"),
		Status:           query.Get("status"),
	}
}

func parseSubmissionListQuery(r *http.Request) *request.SubmissionListQuery {
	query := r.URL.Query()
	return &request.SubmissionListQuery{
		PaginatedRequest: parsePaging(r),
		Status:           query.Get("status"),
		Search:           query.Get("search"),
	}
}
