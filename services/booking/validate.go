// File: services/booking/validate.go
package booking

import (
	"regexp"
	"time"

	"washq/models"
)

// phoneRe matches a local 10-digit phone number with a leading 0.
var phoneRe = regexp.MustCompile(`^0\d{9}$`)

// validateCandidate checks a proposed booking and returns it normalized
// (date truncated to UTC midnight). Checks fail fast in a fixed order:
// required fields, phone format, slot membership, date.
func (s *DefaultBookingService) validateCandidate(c models.BookingCandidate) (*models.Booking, error) {
	if c.Name == "" || c.Phone == "" || c.CarModel == "" || c.LicensePlate == "" || c.Date == "" || c.Time == "" {
		return nil, NewValidationError("missing required fields")
	}
	if !phoneRe.MatchString(c.Phone) {
		return nil, NewValidationError("invalid phone format")
	}
	if !s.hasSlot(c.Time) {
		return nil, NewValidationError("invalid time slot")
	}
	date, err := parseDate(c.Date)
	if err != nil {
		return nil, NewValidationError("invalid date")
	}

	return &models.Booking{
		Name:         c.Name,
		Phone:        c.Phone,
		CarModel:     c.CarModel,
		LicensePlate: c.LicensePlate,
		Date:         date,
		Time:         c.Time,
	}, nil
}

// hasSlot reports whether label is a member of the configured slot enumeration.
func (s *DefaultBookingService) hasSlot(label string) bool {
	for _, slot := range s.Slots {
		if slot == label {
			return true
		}
	}
	return false
}

// parseDate accepts a calendar date ("2006-01-02") or an RFC3339 timestamp
// and normalizes it to UTC midnight; only the day matters for conflicts.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, err
		}
	}
	return truncateToDay(t), nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
