package admin

import (
	"sync"
	"testing"
	"time"

	"washq/config"
	adminRepo "washq/database/repository/admin"
	"washq/models"
	"washq/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]models.Admin // keyed by ID
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]models.Admin)}
}

func (r *fakeAdminRepo) GetByUsername(username string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == username {
			match := a
			return &match, nil
		}
	}
	return nil, adminRepo.ErrNotFound
}

func (r *fakeAdminRepo) GetByID(id string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return nil, adminRepo.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAdminRepo) Create(admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[admin.ID] = *admin
	return nil
}

func (r *fakeAdminRepo) UpdateTokenHash(id, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return adminRepo.ErrNotFound
	}
	a.TokenHash = tokenHash
	r.admins[id] = a
	return nil
}

func seedAdmin(t *testing.T, repo *fakeAdminRepo, username, password string) *models.Admin {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &models.Admin{
		ID:           "admin-1",
		Username:     username,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(admin))
	return admin
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeAdminRepo()
	admin := seedAdmin(t, repo, "admin", "admin123")
	svc := &DefaultAdminService{Repo: repo}

	token, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token carries the admin ID and its hash lands on the record.
	id, err := utils.ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, id)

	stored, err := repo.GetByID(admin.ID)
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(token), stored.TokenHash)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	seedAdmin(t, repo, "admin", "admin123")
	svc := &DefaultAdminService{Repo: repo}

	_, err := svc.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := &DefaultAdminService{Repo: newFakeAdminRepo()}

	_, err := svc.Authenticate("ghost", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	config.AppConfig.AdminUsername = "admin"
	config.AppConfig.AdminPassword = "admin123"

	repo := newFakeAdminRepo()
	svc := &DefaultAdminService{Repo: repo}

	require.NoError(t, svc.EnsureDefaultAdmin())
	created, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("admin123")))

	// Idempotent: a second run leaves the existing account alone.
	require.NoError(t, svc.EnsureDefaultAdmin())
	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.admins, 1)
}
