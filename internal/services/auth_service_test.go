package services

import (
	"testing"

	"contrata_backend/internal/auth"
	"contrata_backend/internal/models"
	"contrata_backend/internal/repositories"
	"contrata_backend/internal/services/dto"
	"contrata_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repositories.NewUserRepository(db), nil)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	service := newAuthService(db)

	resp, err := service.Register(&dto.RegisterRequest{
		Name:     "Maria Silva",
		Email:    "maria@test.com",
		Password: "secret123",
		Role:     models.UserRoleFreelancer,
		City:     "Curitiba",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "maria@test.com", resp.User.Email)
	assert.Equal(t, models.UserRoleFreelancer, resp.User.Role)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, string(models.UserRoleFreelancer), claims.Role)

	login, err := service.Login(&dto.LoginRequest{
		Email:    "maria@test.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	db := newTestDB(t)
	service := newAuthService(db)

	_, err := service.Register(&dto.RegisterRequest{
		Name:     "Maria",
		Email:    "maria@test.com",
		Password: "12345",
		Role:     models.UserRoleFreelancer,
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	service := newAuthService(db)

	req := &dto.RegisterRequest{
		Name:     "Maria",
		Email:    "maria@test.com",
		Password: "secret123",
		Role:     models.UserRoleFreelancer,
	}
	_, err := service.Register(req)
	require.NoError(t, err)

	_, err = service.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	service := newAuthService(db)

	_, err := service.Register(&dto.RegisterRequest{
		Name:     "Maria",
		Email:    "maria@test.com",
		Password: "secret123",
		Role:     models.UserRoleFreelancer,
	})
	require.NoError(t, err)

	// Unknown e-mail and wrong password are indistinguishable.
	_, unknownErr := service.Login(&dto.LoginRequest{Email: "nobody@test.com", Password: "secret123"})
	_, wrongErr := service.Login(&dto.LoginRequest{Email: "maria@test.com", Password: "wrong"})
	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginRejectsExternalAccount(t *testing.T) {
	db := newTestDB(t)
	service := newAuthService(db)

	externalID := "provider|abc123"
	user := &models.User{
		Name:       "João",
		Email:      "joao@test.com",
		Role:       models.UserRoleContratante,
		ExternalID: &externalID,
	}
	require.NoError(t, db.Create(user).Error)

	_, err := service.Login(&dto.LoginRequest{Email: "joao@test.com", Password: "anything"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSyncExternalUser(t *testing.T) {
	db := newTestDB(t)
	service := newAuthService(db)

	req := &dto.SyncExternalUserRequest{
		ExternalID: "provider|abc123",
		Email:      "ana@test.com",
		Name:       "Ana",
		Role:       models.UserRoleFreelancer,
		City:       "Recife",
	}

	first, err := service.SyncExternalUser(req)
	require.NoError(t, err)
	assert.NotEmpty(t, first.Token)

	// Same assertion again resolves to the same account.
	second, err := service.SyncExternalUser(req)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSyncExternalUserAttachesToExistingEmail(t *testing.T) {
	db := newTestDB(t)
	service := newAuthService(db)

	registered, err := service.Register(&dto.RegisterRequest{
		Name:     "Pedro",
		Email:    "pedro@test.com",
		Password: "secret123",
		Role:     models.UserRoleContratante,
	})
	require.NoError(t, err)

	synced, err := service.SyncExternalUser(&dto.SyncExternalUserRequest{
		ExternalID: "provider|pedro",
		Email:      "pedro@test.com",
		Name:       "Pedro",
		Role:       models.UserRoleContratante,
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, synced.User.ID)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", registered.User.ID).Error)
	require.NotNil(t, user.ExternalID)
	assert.Equal(t, "provider|pedro", *user.ExternalID)
	assert.NotEmpty(t, user.PasswordHash, "linking keeps the password login usable")
}

func TestGetProfile(t *testing.T) {
	db := newTestDB(t)
	service := newAuthService(db)
	user := createUser(t, db, "profile@test.com", models.UserRoleFreelancer, false)

	profile, err := service.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, profile.Email)

	_, err = service.GetProfile("missing-id")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
