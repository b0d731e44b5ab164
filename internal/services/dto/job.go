package dto

import (
	"time"

	"contrata_backend/internal/models"
)

type CreateJobRequest struct {
	ClientID      string                 `json:"clientId" validate:"-"` // set by the server from the token
	Title         string                 `json:"title" validate:"required,min=3,max=150"`
	Description   string                 `json:"description" validate:"omitempty,max=5000"`
	SubcategoryID string                 `json:"subcategoryId" validate:"required"`
	Location      string                 `json:"location" validate:"required"`
	Payment       float64                `json:"payment" validate:"required,gt=0"`
	Date          *string                `json:"date,omitempty"`
	Time          *string                `json:"time,omitempty"`
	Schedules     []models.ScheduleEntry `json:"schedules,omitempty"`
	Destaque      bool                   `json:"destaque"`
}

// HasSchedule reports whether at least one scheduling mode is present:
// a simple date+time pair or a non-empty multi-day list.
func (r *CreateJobRequest) HasSchedule() bool {
	if r.Date != nil && *r.Date != "" && r.Time != nil && *r.Time != "" {
		return true
	}
	return len(r.Schedules) > 0
}

type UpdateJobRequest struct {
	Title       *string                `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description *string                `json:"description,omitempty" validate:"omitempty,max=5000"`
	Location    *string                `json:"location,omitempty"`
	Payment     *float64               `json:"payment,omitempty" validate:"omitempty,gt=0"`
	Date        *string                `json:"date,omitempty"`
	Time        *string                `json:"time,omitempty"`
	Schedules   []models.ScheduleEntry `json:"schedules,omitempty"`
}

type JobFilterRequest struct {
	City          string `form:"city" json:"city"`
	CategoryID    string `form:"categoryId" json:"categoryId"`
	SubcategoryID string `form:"subcategoryId" json:"subcategoryId"`
	Date          string `form:"date" json:"date"`
}

// JobResponse is the enriched job shape used by listings and detail
// pages.
type JobResponse struct {
	ID            string                 `json:"id"`
	ClientID      string                 `json:"clientId"`
	SubcategoryID string                 `json:"subcategoryId"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Location      string                 `json:"location"`
	Payment       float64                `json:"payment"`
	Date          *string                `json:"date,omitempty"`
	Time          *string                `json:"time,omitempty"`
	Schedules     []models.ScheduleEntry `json:"schedules,omitempty"`
	Destaque      bool                   `json:"destaque"`
	CreatedAt     time.Time              `json:"createdAt"`

	Client      *UserResponse       `json:"client,omitempty"`
	Subcategory *models.Subcategory `json:"subcategory,omitempty"`
}
