package repositories

import (
	"path/filepath"
	"testing"

	"contrata_backend/internal/database"
	"contrata_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestIncrementForWeekUpserts(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobLimitRepository(db)

	_, err := repo.FindForWeek("user-1", 10)
	assert.ErrorIs(t, err, ErrJobLimitNotFound)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementForWeek("user-1", 10))
	}
	require.NoError(t, repo.IncrementForWeek("user-1", 11))
	require.NoError(t, repo.IncrementForWeek("user-2", 10))

	limit, err := repo.FindForWeek("user-1", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, limit.JobCount)

	limit, err = repo.FindForWeek("user-1", 11)
	require.NoError(t, err)
	assert.Equal(t, 1, limit.JobCount)

	var rows int64
	require.NoError(t, db.Model(&models.JobLimit{}).Count(&rows).Error)
	assert.Equal(t, int64(3), rows, "one row per user and week")
}

func TestApplicationUniqueIndexBackstop(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)

	first := &models.Application{
		JobID:        "job-1",
		FreelancerID: "freelancer-1",
		Status:       models.ApplicationStatusPending,
	}
	require.NoError(t, repo.Create(first))

	duplicate := &models.Application{
		JobID:        "job-1",
		FreelancerID: "freelancer-1",
		Status:       models.ApplicationStatusPending,
	}
	err := repo.Create(duplicate)
	assert.ErrorIs(t, err, ErrApplicationAlreadyExists)

	other := &models.Application{
		JobID:        "job-2",
		FreelancerID: "freelancer-1",
		Status:       models.ApplicationStatusPending,
	}
	assert.NoError(t, repo.Create(other))
}
