package models

// JobLimit counts job postings per user and calendar week. A row is
// created lazily on the first non-premium post of a week and never
// reset; a new week simply starts a fresh row.
type JobLimit struct {
	BaseModel
	UserID     string `gorm:"not null;uniqueIndex:idx_user_week" json:"userId"`
	WeekNumber int    `gorm:"not null;uniqueIndex:idx_user_week" json:"weekNumber"`
	JobCount   int    `gorm:"not null;default:0" json:"jobCount"`
}
