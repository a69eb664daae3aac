// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"washq/config"
	"washq/database"
	"washq/models"
	"washq/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no booking matches the given id.
	ErrNotFound = errors.New("booking not found")
	// ErrDuplicateSlot is returned when a write would put two active
	// bookings into the same (date, time) slot. It originates from the
	// partial unique index, so concurrent writers are serialized by the
	// store rather than by the application.
	ErrDuplicateSlot = errors.New("slot already booked")
)

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	// UpdateByID applies the given $set document and returns the updated record.
	UpdateByID(ctx context.Context, id string, set bson.M) (*models.Booking, error)
	DeleteByID(ctx context.Context, id string) error
	// FindActiveBySlot returns the pending/accepted booking occupying the
	// slot, excluding excludeID when non-empty, or nil if the slot is free.
	FindActiveBySlot(ctx context.Context, date time.Time, timeLabel, excludeID string) (*models.Booking, error)
	FindByPhone(ctx context.Context, phone string) ([]models.Booking, error)
	ListActiveTimes(ctx context.Context, date time.Time) ([]string, error)
	CountByDateRange(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	AggregateByStatus(ctx context.Context) (map[string]int64, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create booking indexes", zap.Error(err))
	}
	return repo
}
