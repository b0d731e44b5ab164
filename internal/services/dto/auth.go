package dto

import "contrata_backend/internal/models"

type RegisterRequest struct {
	Name       string             `json:"name" validate:"required,min=2,max=100"`
	Email      string             `json:"email" validate:"required,email"`
	Password   string             `json:"password" validate:"required"`
	Role       models.UserRole    `json:"type" validate:"required,oneof=freelancer contratante"`
	City       string             `json:"city" validate:"omitempty,max=100"`
	PersonType *models.PersonType `json:"personType,omitempty" validate:"omitempty,oneof=individual empresa"`
	TaxID      *string            `json:"taxId,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SyncExternalUserRequest carries a verified assertion from the
// delegated identity provider.
type SyncExternalUserRequest struct {
	ExternalID string          `json:"externalId" validate:"required"`
	Email      string          `json:"email" validate:"required,email"`
	Name       string          `json:"name" validate:"required"`
	Role       models.UserRole `json:"type" validate:"required,oneof=freelancer contratante"`
	City       string          `json:"city" validate:"omitempty,max=100"`
}

type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
