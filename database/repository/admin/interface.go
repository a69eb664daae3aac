// File: database/repository/admin/interface.go
package adminRepo

import (
	"errors"

	"washq/models"
)

// ErrNotFound is returned when no admin matches the given lookup.
var ErrNotFound = errors.New("admin not found")

// AdminRepository defines data access for admin accounts.
type AdminRepository interface {
	GetByUsername(username string) (*models.Admin, error)
	GetByID(id string) (*models.Admin, error)
	Create(admin *models.Admin) error
	UpdateTokenHash(id, tokenHash string) error
}
