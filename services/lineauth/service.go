// File: services/lineauth/service.go
package lineauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"washq/config"

	"golang.org/x/oauth2"
)

const (
	defaultAuthURL    = "https://access.line.me/oauth2/v2.1/authorize"
	defaultTokenURL   = "https://api.line.me/oauth2/v2.1/token"
	defaultProfileURL = "https://api.line.me/v2/profile"
)

// LineAuthService exchanges a LINE Login authorization code for the LINE
// user identifier of the person who signed in.
type LineAuthService interface {
	ExchangeCode(ctx context.Context, code string) (string, error)
}

// DefaultLineAuthService is the production implementation.
type DefaultLineAuthService struct {
	OAuth      oauth2.Config
	ProfileURL string
}

// NewDefaultLineAuthService builds the service from the configured LINE
// Login channel.
func NewDefaultLineAuthService() *DefaultLineAuthService {
	return &DefaultLineAuthService{
		OAuth: oauth2.Config{
			ClientID:     config.AppConfig.LineChannelID,
			ClientSecret: config.AppConfig.LineChannelSecret,
			RedirectURL:  config.AppConfig.LineRedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:   defaultAuthURL,
				TokenURL:  defaultTokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
			Scopes: []string{"profile", "openid"},
		},
		ProfileURL: defaultProfileURL,
	}
}

type lineProfile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// ExchangeCode trades the authorization code for an access token and fetches
// the profile bound to it, returning the LINE userId.
func (s *DefaultLineAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	if s.OAuth.ClientID == "" || s.OAuth.ClientSecret == "" {
		return "", fmt.Errorf("LINE login channel is not configured")
	}

	token, err := s.OAuth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.ProfileURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build profile request: %w", err)
	}

	resp, err := s.OAuth.Client(ctx, token).Do(req)
	if err != nil {
		return "", fmt.Errorf("profile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("profile request returned %d", resp.StatusCode)
	}

	var profile lineProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return "", fmt.Errorf("failed to decode profile: %w", err)
	}
	if profile.UserID == "" {
		return "", fmt.Errorf("profile response missing userId")
	}
	return profile.UserID, nil
}
