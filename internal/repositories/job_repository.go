package repositories

import (
	"errors"
	"time"

	"contrata_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter holds the optional, combinable listing filters.
type JobFilter struct {
	City          string
	CategoryID    string
	SubcategoryID string
	Date          string
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Find(filter JobFilter) ([]models.Job, error)
	FindByClient(clientID string) ([]models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	ExpireHighlights(now time.Time) error
	CountByClient(clientID string) (int64, error)
	CountWithAcceptedApplication(clientID string) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.
		Preload("Client").
		Preload("Subcategory").
		Preload("Subcategory.Category").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Find lists jobs enriched with client and category data. Highlighted
// jobs come first (expired highlights do not count), then newest.
func (r *JobRepositoryImpl) Find(filter JobFilter) ([]models.Job, error) {
	q := r.db.Model(&models.Job{}).
		Preload("Client").
		Preload("Subcategory").
		Preload("Subcategory.Category")

	if filter.City != "" {
		q = q.Joins("JOIN users ON users.id = jobs.client_id").
			Where("users.city = ?", filter.City)
	}
	if filter.CategoryID != "" {
		q = q.Joins("JOIN subcategories ON subcategories.id = jobs.subcategory_id").
			Where("subcategories.category_id = ?", filter.CategoryID)
	}
	if filter.SubcategoryID != "" {
		q = q.Where("jobs.subcategory_id = ?", filter.SubcategoryID)
	}
	if filter.Date != "" {
		q = q.Where("jobs.date = ?", filter.Date)
	}

	var jobs []models.Job
	err := q.
		Order("jobs.destaque DESC").
		Order("jobs.created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// ExpireHighlights clears destaque on jobs whose paid window has
// passed, so listings stop boosting them. Called lazily before reads.
func (r *JobRepositoryImpl) ExpireHighlights(now time.Time) error {
	return r.db.Model(&models.Job{}).
		Where("destaque = ? AND destaque_expires_at IS NOT NULL AND destaque_expires_at <= ?", true, now).
		Update("destaque", false).Error
}

func (r *JobRepositoryImpl) FindByClient(clientID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Preload("Subcategory").
		Preload("Subcategory.Category").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Job{}, "id = ?", id).Error
}

func (r *JobRepositoryImpl) CountByClient(clientID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("client_id = ?", clientID).Count(&count).Error
	return count, err
}

// CountWithAcceptedApplication counts the client's jobs having at
// least one accepted application.
func (r *JobRepositoryImpl) CountWithAcceptedApplication(clientID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).
		Where("client_id = ?", clientID).
		Where("EXISTS (SELECT 1 FROM applications WHERE applications.job_id = jobs.id AND applications.status = ?)",
			models.ApplicationStatusAccepted).
		Count(&count).Error
	return count, err
}

