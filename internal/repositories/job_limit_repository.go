package repositories

import (
	"errors"
	"strings"

	"contrata_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrJobLimitNotFound = errors.New("job limit not found")

type JobLimitRepository interface {
	FindForWeek(userID string, weekNumber int) (*models.JobLimit, error)
	IncrementForWeek(userID string, weekNumber int) error
}

type JobLimitRepositoryImpl struct {
	db *gorm.DB
}

func NewJobLimitRepository(db *gorm.DB) JobLimitRepository {
	return &JobLimitRepositoryImpl{db: db}
}

func (r *JobLimitRepositoryImpl) FindForWeek(userID string, weekNumber int) (*models.JobLimit, error) {
	var limit models.JobLimit
	err := r.db.First(&limit, "user_id = ? AND week_number = ?", userID, weekNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobLimitNotFound
		}
		return nil, err
	}
	return &limit, nil
}

// IncrementForWeek bumps the weekly counter with a single upsert, so
// concurrent posts never lose an increment.
func (r *JobLimitRepositoryImpl) IncrementForWeek(userID string, weekNumber int) error {
	limit := models.JobLimit{
		UserID:     userID,
		WeekNumber: weekNumber,
		JobCount:   1,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "week_number"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"job_count": gorm.Expr("job_limits.job_count + 1"),
		}),
	}).Create(&limit).Error
}

// isUniqueViolation detects a unique-index conflict across the
// postgres and sqlite drivers.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
