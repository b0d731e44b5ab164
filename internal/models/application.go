package models

type Application struct {
	BaseModel
	JobID        string `gorm:"not null;uniqueIndex:idx_job_freelancer" json:"jobId"`
	FreelancerID string `gorm:"not null;uniqueIndex:idx_job_freelancer" json:"freelancerId"`

	ProposedPrice float64           `json:"proposedPrice"`
	Proposal      string            `json:"proposal"`
	Status        ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Job        *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Freelancer *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
}
