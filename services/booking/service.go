// File: services/booking/service.go
package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "washq/database/repository/booking"
	"washq/metrics"
	"washq/models"
	"washq/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// notifyTimeout bounds a single notification attempt; emission runs off the
// request path so a slow LINE endpoint never stalls a booking mutation.
const notifyTimeout = 10 * time.Second

// checkAvailability reports whether the (date, time) slot is free of active
// bookings, excluding excludeID when set. This is a pre-check for friendly
// errors; the partial unique index in the store closes the check-then-act race.
func (s *DefaultBookingService) checkAvailability(ctx context.Context, date time.Time, timeLabel, excludeID string) (bool, error) {
	existing, err := s.Repo.FindActiveBySlot(ctx, date, timeLabel, excludeID)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

// Create validates the candidate, claims the slot and persists the booking
// with status pending. A taken slot yields a ConflictError.
func (s *DefaultBookingService) Create(ctx context.Context, candidate models.BookingCandidate) (*models.Booking, error) {
	booking, err := s.validateCandidate(candidate)
	if err != nil {
		return nil, err
	}

	available, err := s.checkAvailability(ctx, booking.Date, booking.Time, "")
	if err != nil {
		return nil, err
	}
	if !available {
		metrics.IncBookingConflict()
		return nil, NewConflictError("slot full")
	}

	booking.ID = uuid.New().String()
	booking.Status = models.StatusPending

	if err := s.Repo.Insert(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			metrics.IncBookingConflict()
			return nil, NewConflictError("slot full")
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	s.notifyAsync("created", *booking)
	return booking, nil
}

// UpdateStatus writes a new status for the booking. The operation is
// idempotent; reviving a rejected booking into an occupied slot trips the
// store's uniqueness constraint and surfaces as a ConflictError.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, newStatus string) (*models.Booking, error) {
	if !models.IsValidStatus(newStatus) {
		return nil, NewValidationError("invalid status value")
	}

	updated, err := s.Repo.UpdateByID(ctx, id, bson.M{"status": newStatus})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking not found")
		}
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, NewConflictError("slot full")
		}
		return nil, err
	}

	metrics.IncAdminDecision(newStatus)
	return updated, nil
}

// Reschedule applies any combination of date, time and status changes. A
// changed slot is re-validated against the conflict invariant, excluding the
// booking itself so a no-op reschedule never conflicts with its own record.
func (s *DefaultBookingService) Reschedule(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error) {
	if update.Status == nil && update.Date == nil && update.Time == nil {
		return nil, NewValidationError("no fields to update")
	}

	set := bson.M{}

	if update.Status != nil {
		if !models.IsValidStatus(*update.Status) {
			return nil, NewValidationError("invalid status value")
		}
		set["status"] = *update.Status
	}

	var newDate time.Time
	if update.Date != nil {
		parsed, err := parseDate(*update.Date)
		if err != nil {
			return nil, NewValidationError("invalid date")
		}
		newDate = parsed
		set["date"] = parsed
	}
	if update.Time != nil {
		if !s.hasSlot(*update.Time) {
			return nil, NewValidationError("invalid time slot")
		}
		set["time"] = *update.Time
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking not found")
		}
		return nil, err
	}

	slotChanged := false
	if update.Date != nil || update.Time != nil {
		effectiveDate := existing.Date
		effectiveTime := existing.Time
		if update.Date != nil {
			effectiveDate = newDate
		}
		if update.Time != nil {
			effectiveTime = *update.Time
		}
		slotChanged = !effectiveDate.Equal(existing.Date) || effectiveTime != existing.Time

		available, err := s.checkAvailability(ctx, effectiveDate, effectiveTime, id)
		if err != nil {
			return nil, err
		}
		if !available {
			metrics.IncBookingConflict()
			return nil, NewConflictError("slot full")
		}
	}

	updated, err := s.Repo.UpdateByID(ctx, id, set)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking not found")
		}
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			metrics.IncBookingConflict()
			return nil, NewConflictError("slot full")
		}
		return nil, err
	}

	if update.Status != nil {
		metrics.IncAdminDecision(*update.Status)
	}
	if slotChanged {
		s.notifyAsync("rescheduled", *updated)
	}
	return updated, nil
}

// Delete permanently removes a booking. There is no soft-delete.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return NewNotFoundError("booking not found")
		}
		return err
	}
	return nil
}

// notifyAsync emits a notification event off the request path. Failures are
// logged and absorbed here; they never reach the booking operation's caller.
func (s *DefaultBookingService) notifyAsync(kind string, booking models.Booking) {
	if s.Notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		var err error
		switch kind {
		case "rescheduled":
			err = s.Notifier.NotifyBookingRescheduled(ctx, booking)
		default:
			err = s.Notifier.NotifyBookingCreated(ctx, booking)
		}
		metrics.IncNotification(kind, err == nil)
		if err != nil {
			utils.GetLogger().Warn("booking notification failed",
				zap.String("kind", kind),
				zap.String("bookingId", booking.ID),
				zap.Error(err))
		}
	}()
}
