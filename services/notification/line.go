// File: services/notification/line.go
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"washq/models"
)

const defaultLineAPIBase = "https://api.line.me"

// LineNotificationService pushes text messages to the admin's LINE account
// via the Messaging API.
type LineNotificationService struct {
	baseURL     string
	accessToken string
	adminUserID string
	httpClient  *http.Client
}

// NewLineNotificationService constructs a notifier for the given Messaging
// channel. An empty baseURL selects the production LINE endpoint.
func NewLineNotificationService(baseURL, accessToken, adminUserID string) *LineNotificationService {
	if baseURL == "" {
		baseURL = defaultLineAPIBase
	}
	return &LineNotificationService{
		baseURL:     baseURL,
		accessToken: accessToken,
		adminUserID: adminUserID,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type lineTextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type linePushRequest struct {
	To       string            `json:"to"`
	Messages []lineTextMessage `json:"messages"`
}

// NotifyBookingCreated pushes a "new booking" message to the admin.
func (s *LineNotificationService) NotifyBookingCreated(ctx context.Context, booking models.Booking) error {
	text := fmt.Sprintf(
		"New booking\n%s (%s)\n%s %s\n%s %s",
		booking.Name, booking.Phone,
		booking.CarModel, booking.LicensePlate,
		booking.Date.Format("2006-01-02"), booking.Time,
	)
	return s.push(ctx, text)
}

// NotifyBookingRescheduled pushes a "booking rescheduled" message to the admin.
func (s *LineNotificationService) NotifyBookingRescheduled(ctx context.Context, booking models.Booking) error {
	text := fmt.Sprintf(
		"Booking rescheduled\n%s (%s)\nnow %s %s",
		booking.Name, booking.Phone,
		booking.Date.Format("2006-01-02"), booking.Time,
	)
	return s.push(ctx, text)
}

func (s *LineNotificationService) push(ctx context.Context, text string) error {
	if s.accessToken == "" || s.adminUserID == "" {
		return fmt.Errorf("LINE messaging channel is not configured")
	}

	payload := linePushRequest{
		To:       s.adminUserID,
		Messages: []lineTextMessage{{Type: "text", Text: text}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v2/bot/message/push", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push request returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
