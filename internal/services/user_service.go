package services

import (
	"time"

	"contrata_backend/internal/models"
	"contrata_backend/internal/repositories"
	"contrata_backend/internal/services/dto"
	"contrata_backend/pkg/apperrors"
)

// highlightWindow is how long a purchased destaque stays active.
const highlightWindow = 7 * 24 * time.Hour

type UserService struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// UpdateProfile applies a partial update to the caller's own record.
func (s *UserService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.City != nil {
		user.City = *req.City
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// UpgradeToPremium flips the premium flag. Payment processing is
// simulated; the upgrade itself is unconditional.
func (s *UserService) UpgradeToPremium(userID string) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	user.Premium = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// PurchaseHighlight activates a 7-day destaque on the caller's profile
// or on one of the caller's own jobs.
func (s *UserService) PurchaseHighlight(userID string, req *dto.PurchaseHighlightRequest) error {
	switch req.Type {
	case "profile":
		user, err := s.findUser(userID)
		if err != nil {
			return err
		}
		expires := time.Now().Add(highlightWindow)
		user.Destaque = true
		user.DestaqueExpiresAt = &expires
		if err := s.userRepo.Update(user); err != nil {
			return apperrors.InternalError(err)
		}
		return nil

	case "job":
		if req.TargetID == nil || *req.TargetID == "" {
			return apperrors.NewBadRequestError("targetId is required for job highlights")
		}
		job, err := s.jobRepo.FindByID(*req.TargetID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrJobNotFound) {
				return apperrors.ErrJobNotFound
			}
			return apperrors.InternalError(err)
		}
		if job.ClientID != userID {
			return apperrors.ErrInsufficientPermissions
		}
		expires := time.Now().Add(highlightWindow)
		job.Destaque = true
		job.DestaqueExpiresAt = &expires
		if err := s.jobRepo.Update(job); err != nil {
			return apperrors.InternalError(err)
		}
		return nil

	default:
		return apperrors.NewBadRequestError("type must be 'profile' or 'job'")
	}
}

// GetStats returns role-dependent dashboard numbers.
func (s *UserService) GetStats(userID string) (interface{}, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case models.UserRoleContratante:
		activeJobs, err := s.jobRepo.CountByClient(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		totalApplicants, err := s.applicationRepo.CountByClientJobs(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		completedJobs, err := s.jobRepo.CountWithAcceptedApplication(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.ContratanteStats{
			ActiveJobs:      activeJobs,
			TotalApplicants: totalApplicants,
			CompletedJobs:   completedJobs,
		}, nil

	case models.UserRoleFreelancer:
		total, err := s.applicationRepo.CountByFreelancer(userID, "")
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		accepted, err := s.applicationRepo.CountByFreelancer(userID, models.ApplicationStatusAccepted)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		pending, err := s.applicationRepo.CountByFreelancer(userID, models.ApplicationStatusPending)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.FreelancerStats{
			TotalApplications:    total,
			AcceptedApplications: accepted,
			PendingApplications:  pending,
		}, nil

	default:
		return nil, apperrors.ErrInvalidUserRole
	}
}

func (s *UserService) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
