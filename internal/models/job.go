package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	ClientID      string `gorm:"not null;index" json:"clientId"`
	SubcategoryID string `gorm:"not null;index" json:"subcategoryId"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	// A job carries either a simple date+time or a multi-day schedule
	// list; at least one of the two is mandatory at creation.
	Date      *string        `json:"date,omitempty"`
	Time      *string        `json:"time,omitempty"`
	Schedules datatypes.JSON `json:"schedules,omitempty"`

	// Free text, or the "GPS:lat,lng" sentinel which is stored as-is.
	Location string  `gorm:"not null" json:"location"`
	Payment  float64 `gorm:"not null" json:"payment"`

	Destaque          bool       `gorm:"default:false" json:"destaque"`
	DestaqueExpiresAt *time.Time `json:"-"`

	Client      *User        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
}

// ScheduleEntry is one day of a multi-day schedule, kept as a JSON list
// on the job row.
type ScheduleEntry struct {
	Day       string `json:"day"`
	DayName   string `json:"dayName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (j *Job) Highlighted(now time.Time) bool {
	if !j.Destaque {
		return false
	}
	return j.DestaqueExpiresAt == nil || now.Before(*j.DestaqueExpiresAt)
}
