// File: services/booking/reads.go
package booking

import (
	"context"
	"time"

	"washq/models"
)

// GetAll returns every booking, ordered by slot.
func (s *DefaultBookingService) GetAll(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.GetAll(ctx)
}

// BookedTimes returns the time labels occupied by active bookings on the
// given date. The booking UI uses this to gray out taken slots.
func (s *DefaultBookingService) BookedTimes(ctx context.Context, date string) ([]string, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, NewValidationError("invalid date")
	}
	return s.Repo.ListActiveTimes(ctx, day)
}

// Summary returns the admin dashboard aggregate: bookings for the local
// calendar day, the pending backlog and a per-status breakdown.
func (s *DefaultBookingService) Summary(ctx context.Context) (*models.BookingSummary, error) {
	today := truncateToDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	todayCount, err := s.Repo.CountByDateRange(ctx, today, tomorrow)
	if err != nil {
		return nil, err
	}
	pendingCount, err := s.Repo.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.Repo.AggregateByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &models.BookingSummary{
		TodayBookings:   todayCount,
		PendingBookings: pendingCount,
		StatusBreakdown: breakdown,
	}, nil
}

// CheckStatusByPhone returns the bookings submitted under a phone number so
// clients can look up their queue status without an account.
func (s *DefaultBookingService) CheckStatusByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	if !phoneRe.MatchString(phone) {
		return nil, NewValidationError("invalid phone format")
	}
	return s.Repo.FindByPhone(ctx, phone)
}
