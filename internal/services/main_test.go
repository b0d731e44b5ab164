package services

import (
	"path/filepath"
	"testing"

	"contrata_backend/internal/config"
	"contrata_backend/internal/database"
	"contrata_backend/internal/logger"
	"contrata_backend/internal/models"
	"contrata_backend/internal/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Quota.WeeklyJobLimit = 3
	config.AppConfig = cfg
	m.Run()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.UserRole, premium bool) *models.User {
	t.Helper()
	user := &models.User{
		Name:    "Test User",
		Email:   email,
		Role:    role,
		City:    "São Paulo",
		Premium: premium,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createSubcategory(t *testing.T, db *gorm.DB) *models.Subcategory {
	t.Helper()
	category := &models.Category{Name: "Eventos"}
	require.NoError(t, db.Create(category).Error)
	subcategory := &models.Subcategory{Name: "Garçom", CategoryID: category.ID}
	require.NoError(t, db.Create(subcategory).Error)
	return subcategory
}

func createJob(t *testing.T, db *gorm.DB, clientID, subcategoryID string) *models.Job {
	t.Helper()
	date := "2026-09-15"
	start := "18:00"
	job := &models.Job{
		ClientID:      clientID,
		SubcategoryID: subcategoryID,
		Title:         "Garçom para festa",
		Location:      "São Paulo",
		Payment:       150,
		Date:          &date,
		Time:          &start,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func newJobService(db *gorm.DB) *JobService {
	return NewJobService(
		repositories.NewJobRepository(db),
		repositories.NewJobLimitRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewCategoryRepository(db),
		DefaultQuotaPolicy(),
	)
}

func newApplicationService(db *gorm.DB) *ApplicationService {
	return NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
		repositories.NewUserRepository(db),
	)
}

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(
		repositories.NewUserRepository(db),
		repositories.NewJobRepository(db),
		repositories.NewApplicationRepository(db),
	)
}
