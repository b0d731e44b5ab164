package dto

import (
	"time"

	"contrata_backend/internal/models"
)

type CreateApplicationRequest struct {
	FreelancerID  string   `json:"freelancerId" validate:"-"` // set by the server from the token
	JobID         string   `json:"jobId" validate:"required"`
	ProposedPrice *float64 `json:"proposedPrice,omitempty" validate:"omitempty,gt=0"`
	Proposal      string   `json:"proposal" validate:"omitempty,max=5000"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=pending accepted rejected"`
}

// ApplicationResponse enriches an application with the applicant for
// the job owner's view, or with the full job for the freelancer's.
type ApplicationResponse struct {
	ID            string                   `json:"id"`
	JobID         string                   `json:"jobId"`
	FreelancerID  string                   `json:"freelancerId"`
	ProposedPrice float64                  `json:"proposedPrice"`
	Proposal      string                   `json:"proposal"`
	Status        models.ApplicationStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`

	Freelancer *UserResponse `json:"freelancer,omitempty"`
	Job        *JobResponse  `json:"job,omitempty"`
}
