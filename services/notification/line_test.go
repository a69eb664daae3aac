package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"washq/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooking() models.Booking {
	return models.Booking{
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

func TestNotifyBookingCreated(t *testing.T) {
	var got linePushRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/bot/message/push", r.URL.Path)
		assert.Equal(t, "Bearer channel-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewLineNotificationService(srv.URL, "channel-token", "U-admin")
	require.NoError(t, svc.NotifyBookingCreated(context.Background(), testBooking()))

	assert.Equal(t, "U-admin", got.To)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "text", got.Messages[0].Type)
	assert.Contains(t, got.Messages[0].Text, "Somchai")
	assert.Contains(t, got.Messages[0].Text, "2024-06-01")
	assert.Contains(t, got.Messages[0].Text, "10:00")
}

func TestNotifyBookingRescheduled(t *testing.T) {
	var got linePushRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewLineNotificationService(srv.URL, "channel-token", "U-admin")
	b := testBooking()
	b.Time = "13:00"
	require.NoError(t, svc.NotifyBookingRescheduled(context.Background(), b))

	require.Len(t, got.Messages, 1)
	assert.Contains(t, got.Messages[0].Text, "rescheduled")
	assert.Contains(t, got.Messages[0].Text, "13:00")
}

func TestPushNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid channel access token"}`))
	}))
	defer srv.Close()

	svc := NewLineNotificationService(srv.URL, "bad-token", "U-admin")
	err := svc.NotifyBookingCreated(context.Background(), testBooking())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestPushUnconfigured(t *testing.T) {
	svc := NewLineNotificationService("", "", "")
	assert.Error(t, svc.NotifyBookingCreated(context.Background(), testBooking()))
}
