package dto

import (
	"time"

	"contrata_backend/internal/models"
)

// UserResponse is the public shape of a user; the password hash and
// provider id never leave the service layer.
type UserResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Role       models.UserRole    `json:"type"`
	City       string             `json:"city"`
	PersonType *models.PersonType `json:"personType,omitempty"`
	Premium    bool               `json:"premium"`
	Destaque   bool               `json:"destaque"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		City:       user.City,
		PersonType: user.PersonType,
		Premium:    user.Premium,
		Destaque:   user.Highlighted(time.Now()),
		CreatedAt:  user.CreatedAt,
	}
}

type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	City *string `json:"city,omitempty" validate:"omitempty,max=100"`
}

type PurchaseHighlightRequest struct {
	Type     string  `json:"type" validate:"required,oneof=profile job"`
	TargetID *string `json:"targetId,omitempty"`
}

// Stats shapes differ per role; only the relevant struct is returned.

type ContratanteStats struct {
	ActiveJobs      int64 `json:"activeJobs"`
	TotalApplicants int64 `json:"totalApplicants"`
	CompletedJobs   int64 `json:"completedJobs"`
}

type FreelancerStats struct {
	TotalApplications    int64 `json:"totalApplications"`
	AcceptedApplications int64 `json:"acceptedApplications"`
	PendingApplications  int64 `json:"pendingApplications"`
}
