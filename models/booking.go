package models

import "time"

// Booking statuses. A booking occupies its slot while pending or accepted;
// a rejected booking frees the slot immediately.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ActiveStatuses are the statuses that occupy a (date, time) slot.
var ActiveStatuses = []string{StatusPending, StatusAccepted}

// IsValidStatus reports whether s is one of the three legal booking statuses.
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// Booking represents a single car-wash appointment request.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone" json:"phone"`                 // 10 digits, leading 0
	CarModel     string    `bson:"carModel" json:"carModel"`
	LicensePlate string    `bson:"licensePlate" json:"licensePlate"`
	Date         time.Time `bson:"date" json:"date"`                   // normalized to UTC midnight
	Time         string    `bson:"time" json:"time"`                   // slot label, e.g. "10:00"
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingCandidate is the client-submitted payload for a new booking.
type BookingCandidate struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	CarModel     string `json:"carModel"`
	LicensePlate string `json:"licensePlate"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// BookingUpdate carries the admin-supplied changes for an existing booking.
// Nil fields are left untouched.
type BookingUpdate struct {
	Status *string `json:"status"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
}

// BookingSummary is the admin dashboard aggregate.
type BookingSummary struct {
	TodayBookings   int64            `json:"todayBookings"`
	PendingBookings int64            `json:"pendingBookings"`
	StatusBreakdown map[string]int64 `json:"statusBreakdown"`
}
