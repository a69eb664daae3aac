package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"washq/models"
	"washq/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingService returns canned results so the handler's request parsing
// and error mapping can be tested in isolation.
type stubBookingService struct {
	createFn       func(models.BookingCandidate) (*models.Booking, error)
	updateStatusFn func(id, status string) (*models.Booking, error)
	rescheduleFn   func(id string, update models.BookingUpdate) (*models.Booking, error)
	deleteFn       func(id string) error
	bookedTimesFn  func(date string) ([]string, error)
	checkStatusFn  func(phone string) ([]models.Booking, error)
	getAllFn       func() ([]models.Booking, error)
	summaryFn      func() (*models.BookingSummary, error)
}

func (s *stubBookingService) Create(_ context.Context, c models.BookingCandidate) (*models.Booking, error) {
	return s.createFn(c)
}

func (s *stubBookingService) GetAll(_ context.Context) ([]models.Booking, error) {
	return s.getAllFn()
}

func (s *stubBookingService) UpdateStatus(_ context.Context, id, status string) (*models.Booking, error) {
	return s.updateStatusFn(id, status)
}

func (s *stubBookingService) Reschedule(_ context.Context, id string, update models.BookingUpdate) (*models.Booking, error) {
	return s.rescheduleFn(id, update)
}

func (s *stubBookingService) Delete(_ context.Context, id string) error {
	return s.deleteFn(id)
}

func (s *stubBookingService) BookedTimes(_ context.Context, date string) ([]string, error) {
	return s.bookedTimesFn(date)
}

func (s *stubBookingService) Summary(_ context.Context) (*models.BookingSummary, error) {
	return s.summaryFn()
}

func (s *stubBookingService) CheckStatusByPhone(_ context.Context, phone string) ([]models.Booking, error) {
	return s.checkStatusFn(phone)
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:           "b-1",
		Name:         "Somchai",
		Phone:        "0812345678",
		CarModel:     "Toyota Vios",
		LicensePlate: "1ABC123",
		Date:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:         "10:00",
		Status:       models.StatusPending,
	}
}

func newBookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc)
	r := gin.New()
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings", h.GetBookings)
	r.GET("/api/bookings/booked-times", h.GetBookedTimes)
	r.POST("/api/bookings/check-status", h.CheckStatus)
	r.PATCH("/api/bookings/:id", h.UpdateBooking)
	r.DELETE("/api/bookings/:id", h.DeleteBooking)
	return r
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBookingCreated(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(c models.BookingCandidate) (*models.Booking, error) {
			assert.Equal(t, "Somchai", c.Name)
			return sampleBooking(), nil
		},
	}
	router := newBookingRouter(svc)

	w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{
		"name": "Somchai", "phone": "0812345678",
		"carModel": "Toyota Vios", "licensePlate": "1ABC123",
		"date": "2024-06-01", "time": "10:00",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var got models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestCreateBookingErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", booking.NewValidationError("invalid phone number"), http.StatusBadRequest, "invalid phone number"},
		{"conflict", booking.NewConflictError("slot full"), http.StatusConflict, "slot full"},
		{"dependency", assert.AnError, http.StatusInternalServerError, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubBookingService{
				createFn: func(models.BookingCandidate) (*models.Booking, error) {
					return nil, tt.err
				},
			}
			w := doJSON(newBookingRouter(svc), http.MethodPost, "/api/bookings", gin.H{"name": "x"})

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestCreateBookingMalformedBody(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingsEmptyIsArray(t *testing.T) {
	svc := &stubBookingService{
		getAllFn: func() ([]models.Booking, error) { return nil, nil },
	}
	w := doJSON(newBookingRouter(svc), http.MethodGet, "/api/bookings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestUpdateBookingRoutesStatusOnly(t *testing.T) {
	var statusCalled, rescheduleCalled bool
	svc := &stubBookingService{
		updateStatusFn: func(id, status string) (*models.Booking, error) {
			statusCalled = true
			assert.Equal(t, "b-1", id)
			assert.Equal(t, models.StatusAccepted, status)
			b := sampleBooking()
			b.Status = status
			return b, nil
		},
		rescheduleFn: func(string, models.BookingUpdate) (*models.Booking, error) {
			rescheduleCalled = true
			return sampleBooking(), nil
		},
	}
	w := doJSON(newBookingRouter(svc), http.MethodPatch, "/api/bookings/b-1", gin.H{"status": "accepted"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, statusCalled)
	assert.False(t, rescheduleCalled)
}

func TestUpdateBookingRoutesReschedule(t *testing.T) {
	var rescheduleCalled bool
	svc := &stubBookingService{
		rescheduleFn: func(id string, update models.BookingUpdate) (*models.Booking, error) {
			rescheduleCalled = true
			require.NotNil(t, update.Time)
			assert.Equal(t, "11:00", *update.Time)
			b := sampleBooking()
			b.Time = *update.Time
			return b, nil
		},
	}
	w := doJSON(newBookingRouter(svc), http.MethodPatch, "/api/bookings/b-1", gin.H{"time": "11:00"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, rescheduleCalled)
}

func TestUpdateBookingNotFound(t *testing.T) {
	svc := &stubBookingService{
		updateStatusFn: func(string, string) (*models.Booking, error) {
			return nil, booking.NewNotFoundError("booking not found")
		},
	}
	w := doJSON(newBookingRouter(svc), http.MethodPatch, "/api/bookings/nope", gin.H{"status": "accepted"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBooking(t *testing.T) {
	svc := &stubBookingService{
		deleteFn: func(id string) error {
			if id == "b-1" {
				return nil
			}
			return booking.NewNotFoundError("booking not found")
		},
	}
	router := newBookingRouter(svc)

	w := doJSON(router, http.MethodDelete, "/api/bookings/b-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/bookings/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBookedTimes(t *testing.T) {
	svc := &stubBookingService{
		bookedTimesFn: func(date string) ([]string, error) {
			assert.Equal(t, "2024-06-01", date)
			return []string{"10:00", "13:00"}, nil
		},
	}
	router := newBookingRouter(svc)

	w := doJSON(router, http.MethodGet, "/api/bookings/booked-times?date=2024-06-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		BookedTimes []string `json:"bookedTimes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"10:00", "13:00"}, body.BookedTimes)

	// The date parameter is mandatory.
	w = doJSON(router, http.MethodGet, "/api/bookings/booked-times", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSummary(t *testing.T) {
	svc := &stubBookingService{
		summaryFn: func() (*models.BookingSummary, error) {
			return &models.BookingSummary{
				TodayBookings:   2,
				PendingBookings: 1,
				StatusBreakdown: map[string]int64{models.StatusPending: 1, models.StatusAccepted: 1},
			}, nil
		},
	}
	h := NewBookingHandler(svc)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/bookings/summary", h.GetSummary)

	w := doJSON(r, http.MethodGet, "/api/bookings/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.BookingSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(2), got.TodayBookings)
	assert.Equal(t, int64(1), got.PendingBookings)
	assert.Equal(t, int64(1), got.StatusBreakdown[models.StatusAccepted])
}

func TestCheckStatus(t *testing.T) {
	svc := &stubBookingService{
		checkStatusFn: func(phone string) ([]models.Booking, error) {
			assert.Equal(t, "0812345678", phone)
			return []models.Booking{*sampleBooking()}, nil
		},
	}
	w := doJSON(newBookingRouter(svc), http.MethodPost, "/api/bookings/check-status", gin.H{"phone": "0812345678"})

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Bookings []models.Booking `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Bookings, 1)
	assert.Equal(t, "b-1", body.Bookings[0].ID)
}
