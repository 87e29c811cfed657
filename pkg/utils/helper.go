package utils

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the format of date-only query parameters.
const DateLayout = "2006-01-02"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseOptionalInt returns nil for an empty or malformed value
func ParseOptionalInt(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &result
}

// ParseOptionalBool returns nil unless value is a recognised boolean
func ParseOptionalBool(value string) *bool {
	if value == "" {
		return nil
	}

	result, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}
	return &result
}

// ParseOptionalDate parses a YYYY-MM-DD value in loc
func ParseOptionalDate(value string, loc *time.Location) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	result, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return nil
	}
	return &result
}
