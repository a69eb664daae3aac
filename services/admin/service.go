// File: services/admin/service.go
package admin

import (
	"context"
	"errors"
	"time"

	"washq/config"
	adminRepo "washq/database/repository/admin"
	"washq/models"
	"washq/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = time.Hour

// Authenticate verifies the credentials and returns a session token. The
// token hash is stored on the admin record and mirrored into the auth cache
// so the middleware can verify sessions without hitting Mongo.
func (s *DefaultAdminService) Authenticate(username, password string) (string, error) {
	admin, err := s.Repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(admin.ID, sessionTTL)
	if err != nil {
		return "", err
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(admin.ID, tokenHash); err != nil {
		return "", err
	}

	// Best-effort cache warm-up; a cold or absent cache falls back to Mongo.
	if cache := utils.GetAuthCacheClient(); cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.Set(ctx, utils.AuthCachePrefix+admin.ID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache admin session", zap.Error(err))
		}
	}

	return token, nil
}

// EnsureDefaultAdmin creates the configured default admin account if it does
// not exist yet. The lookup-or-create sequence is idempotent across restarts.
func (s *DefaultAdminService) EnsureDefaultAdmin() error {
	username := config.AppConfig.AdminUsername

	_, err := s.Repo.GetByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adminRepo.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.Repo.Create(admin); err != nil {
		return err
	}

	utils.GetLogger().Info("created default admin account", zap.String("username", username))
	return nil
}
