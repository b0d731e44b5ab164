package services

import (
	"time"

	"contrata_backend/internal/models"
	"contrata_backend/internal/repositories"
	"contrata_backend/internal/services/dto"
	"contrata_backend/pkg/apperrors"
)

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
	}
}

// CreateApplication submits a freelancer's proposal. One application
// per (job, freelancer); owners cannot apply to their own jobs. When
// no price is proposed the job's listed payment is used.
func (s *ApplicationService) CreateApplication(req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	freelancer, err := s.userRepo.FindByID(req.FreelancerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if freelancer.Role != models.UserRoleFreelancer {
		return nil, apperrors.ErrInsufficientPermissions
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.ClientID == req.FreelancerID {
		return nil, apperrors.ErrCannotApplyToOwnJob
	}

	exists, err := s.applicationRepo.ExistsForJobAndFreelancer(req.JobID, req.FreelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	price := job.Payment
	if req.ProposedPrice != nil {
		price = *req.ProposedPrice
	}

	application := &models.Application{
		JobID:         req.JobID,
		FreelancerID:  req.FreelancerID,
		ProposedPrice: price,
		Proposal:      req.Proposal,
		Status:        models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	application.Freelancer = freelancer
	return buildApplicationResponse(application), nil
}

// GetApplicationsByJob lists a job's applicants, newest first. Only
// the owning client may see them.
func (s *ApplicationService) GetApplicationsByJob(jobID, requesterID string) ([]*dto.ApplicationResponse, error) {
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

	applications, err := s.applicationRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, buildApplicationResponse(&applications[i]))
	}
	return responses, nil
}

// GetApplicationsByFreelancer returns the caller's applications with
// full job, client and category data, newest first.
func (s *ApplicationService) GetApplicationsByFreelancer(freelancerID string) ([]*dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByFreelancer(freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, buildApplicationResponse(&applications[i]))
	}
	return responses, nil
}

// UpdateApplicationStatus moves an application between pending,
// accepted and rejected. The requester must own the job behind the
// application; transitions are otherwise unrestricted, so a decision
// can be re-set.
func (s *ApplicationService) UpdateApplicationStatus(applicationID, requesterID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(application.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.ClientID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	application.Status = status
	return buildApplicationResponse(application), nil
}

func buildApplicationResponse(application *models.Application) *dto.ApplicationResponse {
	response := &dto.ApplicationResponse{
		ID:            application.ID,
		JobID:         application.JobID,
		FreelancerID:  application.FreelancerID,
		ProposedPrice: application.ProposedPrice,
		Proposal:      application.Proposal,
		Status:        application.Status,
		CreatedAt:     application.CreatedAt,
	}

	if application.Freelancer != nil {
		response.Freelancer = dto.NewUserResponse(application.Freelancer)
	}

	if application.Job != nil {
		job := application.Job
		jobResponse := &dto.JobResponse{
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
		if job.Client != nil {
			jobResponse.Client = dto.NewUserResponse(job.Client)
		}
		response.Job = jobResponse
	}

	return response
}
