// File: services/admin/interface.go
package admin

import (
	"errors"

	adminRepo "washq/database/repository/admin"
)

// ErrInvalidCredentials is returned when the username/password pair does not
// match a stored admin account. Maps to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminService handles admin authentication and the startup bootstrap.
type AdminService interface {
	Authenticate(username, password string) (string, error)
	EnsureDefaultAdmin() error
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo adminRepo.AdminRepository
}
