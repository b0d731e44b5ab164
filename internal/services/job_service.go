package services

import (
	"encoding/json"
	"fmt"
	"time"

	"contrata_backend/internal/logger"
	"contrata_backend/internal/models"
	"contrata_backend/internal/repositories"
	"contrata_backend/internal/services/dto"
	"contrata_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type JobService struct {
	jobRepo      repositories.JobRepository
	jobLimitRepo repositories.JobLimitRepository
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	quota        QuotaPolicy
}

func NewJobService(
	jobRepo repositories.JobRepository,
	jobLimitRepo repositories.JobLimitRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	quota QuotaPolicy,
) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		jobLimitRepo: jobLimitRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		quota:        quota,
	}
}

// CreateJob validates the scheduling invariant, applies the weekly
// quota for non-premium posters and persists the job. The quota
// increment is a separate write after the insert; a partial failure
// only grants a free extra post.
func (s *JobService) CreateJob(req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if !req.HasSchedule() {
		return nil, apperrors.ErrMissingSchedule
	}

	client, err := s.userRepo.FindByID(req.ClientID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if client.Role != models.UserRoleContratante {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if _, err := s.categoryRepo.FindSubcategoryByID(req.SubcategoryID); err != nil {
		if apperrors.Is(err, repositories.ErrSubcategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	week := CurrentWeekNumber()
	if !client.Premium {
		posted := 0
		limit, err := s.jobLimitRepo.FindForWeek(client.ID, week)
		if err != nil && !apperrors.Is(err, repositories.ErrJobLimitNotFound) {
			return nil, apperrors.InternalError(err)
		}
		if limit != nil {
			posted = limit.JobCount
		}
		if !s.quota.Allows(client, posted) {
			return nil, apperrors.ErrWeeklyJobLimit
		}
	}

	job := &models.Job{
		ClientID:      client.ID,
		SubcategoryID: req.SubcategoryID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Payment:       req.Payment,
		Date:          req.Date,
		Time:          req.Time,
		Destaque:      req.Destaque,
	}

	if len(req.Schedules) > 0 {
		schedulesJSON, err := json.Marshal(req.Schedules)
		if err != nil {
			return nil, apperrors.InternalError(fmt.Errorf("failed to marshal schedules: %w", err))
		}
		job.Schedules = datatypes.JSON(schedulesJSON)
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Premium posters skip quota tracking entirely.
	if !client.Premium {
		if err := s.jobLimitRepo.IncrementForWeek(client.ID, week); err != nil {
			logger.WithError(err).Warn("failed to increment weekly job count",
				"userId", client.ID, "week", week)
		}
	}

	job.Client = client
	return s.buildJobResponse(job), nil
}

// GetJobs lists jobs with the optional filters combined, highlighted
// postings first, then newest.
func (s *JobService) GetJobs(req dto.JobFilterRequest) ([]*dto.JobResponse, error) {
	if err := s.jobRepo.ExpireHighlights(time.Now()); err != nil {
		logger.WithError(err).Warn("failed to expire job highlights")
	}

	jobs, err := s.jobRepo.Find(repositories.JobFilter{
		City:          req.City,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Date:          req.Date,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, s.buildJobResponse(&jobs[i]))
	}
	return responses, nil
}

func (s *JobService) GetJobByID(id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobResponse(job), nil
}

// GetJobsByClient returns the client's own postings, newest first. The
// client relation is omitted since the caller is the client.
func (s *JobService) GetJobsByClient(clientID string) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByClient(clientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, s.buildJobResponse(&jobs[i]))
	}
	return responses, nil
}

// UpdateJob applies a partial update. Absence is checked before
// ownership so a wrong id reads as "not found", not "forbidden".
func (s *JobService) UpdateJob(jobID, requesterID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.ClientID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Payment != nil {
		job.Payment = *req.Payment
	}
	if req.Date != nil {
		job.Date = req.Date
	}
	if req.Time != nil {
		job.Time = req.Time
	}
	if req.Schedules != nil {
		schedulesJSON, err := json.Marshal(req.Schedules)
		if err != nil {
			return nil, apperrors.InternalError(fmt.Errorf("failed to marshal schedules: %w", err))
		}
		job.Schedules = datatypes.JSON(schedulesJSON)
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobResponse(job), nil
}

func (s *JobService) DeleteJob(jobID, requesterID string) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if job.ClientID != requesterID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobService) buildJobResponse(job *models.Job) *dto.JobResponse {
	response := &dto.JobResponse{
		ID:            job.ID,
		ClientID:      job.ClientID,
		SubcategoryID: job.SubcategoryID,
		Title:         job.Title,
		Description:   job.Description,
		Location:      job.Location,
		Payment:       job.Payment,
		Date:          job.Date,
		Time:          job.Time,
		Destaque:      job.Highlighted(time.Now()),
		CreatedAt:     job.CreatedAt,
		Subcategory:   job.Subcategory,
	}

	if len(job.Schedules) > 0 {
		var schedules []models.ScheduleEntry
		if err := json.Unmarshal(job.Schedules, &schedules); err == nil {
			response.Schedules = schedules
		}
	}

	if job.Client != nil {
		response.Client = dto.NewUserResponse(job.Client)
	}
	return response
}
