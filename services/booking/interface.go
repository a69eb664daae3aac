// File: services/booking/interface.go
package booking

import (
	"context"

	bookingRepo "washq/database/repository/booking"
	"washq/models"
	"washq/services/notification"
)

// BookingService owns the booking lifecycle: validation, the slot-conflict
// invariant, status transitions and the read-side queries.
type BookingService interface {
	Create(ctx context.Context, candidate models.BookingCandidate) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, newStatus string) (*models.Booking, error)
	Reschedule(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	BookedTimes(ctx context.Context, date string) ([]string, error)
	Summary(ctx context.Context) (*models.BookingSummary, error)
	CheckStatusByPhone(ctx context.Context, phone string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.NotificationService
	Slots    []string
}

// NewDefaultBookingService wires the booking manager with its store, the
// best-effort notifier and the configured slot enumeration.
func NewDefaultBookingService(repo bookingRepo.BookingRepository, notifier notification.NotificationService, slots []string) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Notifier: notifier,
		Slots:    slots,
	}
}
