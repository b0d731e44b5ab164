package services

import (
	"contrata_backend/internal/auth"
	"contrata_backend/internal/email"
	"contrata_backend/internal/logger"
	"contrata_backend/internal/models"
	"contrata_backend/internal/repositories"
	"contrata_backend/internal/services/dto"
	"contrata_backend/pkg/apperrors"
)

type AuthService struct {
	userRepo repositories.UserRepository
	sender   *email.Sender // nil when SMTP is not configured
}

func NewAuthService(userRepo repositories.UserRepository, sender *email.Sender) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sender:   sender,
	}
}

// Register creates a password-based account and issues a session
// token.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Password) < 6 {
		return nil, apperrors.ErrWeakPassword
	}

	if req.Role != models.UserRoleFreelancer && req.Role != models.UserRoleContratante {
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		City:         req.City,
		PersonType:   req.PersonType,
		TaxID:        req.TaxID,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if s.sender != nil {
		go func() {
			if err := s.sender.SendWelcome(user.Email, user.Name); err != nil {
				logger.WithError(err).Warn("failed to send welcome email", "email", user.Email)
			}
		}()
	}

	return s.issueSession(user)
}

// Login verifies a password account. Unknown e-mail and wrong password
// produce the same error.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	// Accounts created through the delegated provider have no hash.
	if user.PasswordHash == "" || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueSession(user)
}

// SyncExternalUser converges a verified identity-provider assertion on
// the local user model: match by provider id first, then by e-mail
// (attaching the id), otherwise create a passwordless account. The
// session token is identical to the password path.
func (s *AuthService) SyncExternalUser(req *dto.SyncExternalUserRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByExternalID(req.ExternalID)
	if err != nil && !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if user == nil {
		user, err = s.userRepo.FindByEmail(req.Email)
		if err != nil && !apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}

		if user != nil {
			externalID := req.ExternalID
			user.ExternalID = &externalID
			if err := s.userRepo.Update(user); err != nil {
				return nil, apperrors.InternalError(err)
			}
		} else {
			if req.Role != models.UserRoleFreelancer && req.Role != models.UserRoleContratante {
				return nil, apperrors.ErrInvalidUserRole
			}
			externalID := req.ExternalID
			user = &models.User{
				Name:       req.Name,
				Email:      req.Email,
				Role:       req.Role,
				City:       req.City,
				ExternalID: &externalID,
			}
			if err := s.userRepo.Create(user); err != nil {
				return nil, apperrors.InternalError(err)
			}
		}
	}

	return s.issueSession(user)
}

// GetProfile returns the authenticated user's public fields.
func (s *AuthService) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *AuthService) issueSession(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	}, nil
}
