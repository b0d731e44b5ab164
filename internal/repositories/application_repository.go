package repositories

import (
	"errors"

	"contrata_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJob(jobID string) ([]models.Application, error)
	FindByFreelancer(freelancerID string) ([]models.Application, error)
	ExistsForJobAndFreelancer(jobID, freelancerID string) (bool, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	CountByFreelancer(freelancerID string, status models.ApplicationStatus) (int64, error)
	CountByClientJobs(clientID string) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create inserts the application. The unique (job_id, freelancer_id)
// index backstops the service-level duplicate check under concurrency.
func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if err != nil && isUniqueViolation(err) {
		return ErrApplicationAlreadyExists
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("Freelancer").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByFreelancer(freelancerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("Job").
		Preload("Job.Client").
		Preload("Job.Subcategory").
		Preload("Job.Subcategory.Category").
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ExistsForJobAndFreelancer(jobID, freelancerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND freelancer_id = ?", jobID, freelancerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountByFreelancer(freelancerID string, status models.ApplicationStatus) (int64, error) {
	var count int64
	q := r.db.Model(&models.Application{}).Where("freelancer_id = ?", freelancerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&count).Error
	return count, err
}

// CountByClientJobs sums applications across every job owned by the
// client.
func (r *ApplicationRepositoryImpl) CountByClientJobs(clientID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.client_id = ?", clientID).
		Count(&count).Error
	return count, err
}
