package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// BookingRefExample is a well-formed HolidayTaxis booking reference.
const BookingRefExample = "BAHOL-26783177"

// BookingRefFormatMessage is shown to the user when a reference is rejected.
const BookingRefFormatMessage = "Invalid format! Reference must be: " + BookingRefExample +
	" (exactly 5 uppercase letters, hyphen, exactly 8 digits)"

var bookingRefPattern = regexp.MustCompile(`^[A-Z]{5}-[0-9]{8}$`)

// NormalizeBookingRef trims surrounding whitespace and uppercases the reference.
func NormalizeBookingRef(ref string) string {
	return strings.ToUpper(strings.TrimSpace(ref))
}

// ValidateBookingRef reports whether ref, once normalized, has the partner
// format: five ASCII letters, a hyphen and eight ASCII digits.
func ValidateBookingRef(ref string) bool {
	normalized := NormalizeBookingRef(ref)
	// ToUpper maps some non-ASCII runes onto ASCII letters (e.g. U+017F to 'S'),
	// so the raw input has to be ASCII before the pattern is tried.
	if !isASCII(strings.TrimSpace(ref)) {
		return false
	}
	return bookingRefPattern.MatchString(normalized)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
