// File: services/notification/interface.go
package notification

import (
	"context"

	"washq/models"
)

// NotificationService defines the side channel that tells the admin about
// booking activity. Delivery is best-effort: callers fire it off the request
// path and swallow failures.
type NotificationService interface {
	NotifyBookingCreated(ctx context.Context, booking models.Booking) error
	NotifyBookingRescheduled(ctx context.Context, booking models.Booking) error
}
