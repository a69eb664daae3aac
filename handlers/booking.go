// File: handlers/booking.go
package handlers

import (
	"net/http"

	"washq/models"
	"washq/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking manager over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// respondError maps the booking error taxonomy onto HTTP statuses. Anything
// outside the expected types is a dependency failure: logged with context,
// surfaced as a generic 500.
func respondError(c *gin.Context, err error) {
	switch e := err.(type) {
	case *booking.ValidationError:
		c.JSON(http.StatusBadRequest, gin.H{"message": e.Message})
	case *booking.ConflictError:
		c.JSON(http.StatusConflict, gin.H{"message": e.Message})
	case *booking.NotFoundError:
		c.JSON(http.StatusNotFound, gin.H{"message": e.Message})
	default:
		getLogger(c).Error("booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

// CreateBooking handles POST /api/bookings (public).
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var candidate models.BookingCandidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), candidate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookings handles GET /api/bookings (admin).
func (h *BookingHandler) GetBookings(c *gin.Context) {
	bookings, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetSummary handles GET /api/bookings/summary (admin).
func (h *BookingHandler) GetSummary(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UpdateBooking handles PATCH /api/bookings/:id (admin). A status-only body
// is a plain status change; any date/time field routes through the
// reschedule path with its conflict re-check.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	var (
		updated *models.Booking
		err     error
	)
	if update.Status != nil && update.Date == nil && update.Time == nil {
		updated, err = h.Service.UpdateStatus(c.Request.Context(), id, *update.Status)
	} else {
		updated, err = h.Service.Reschedule(c.Request.Context(), id, update)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBooking handles DELETE /api/bookings/:id (admin).
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// GetBookedTimes handles GET /api/bookings/booked-times?date= (public).
func (h *BookingHandler) GetBookedTimes(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing date parameter"})
		return
	}

	times, err := h.Service.BookedTimes(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	if times == nil {
		times = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"bookedTimes": times})
}

// CheckStatus handles POST /api/bookings/check-status (public). Clients look
// up their bookings by the phone number they booked with.
func (h *BookingHandler) CheckStatus(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	bookings, err := h.Service.CheckStatusByPhone(c.Request.Context(), req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
