package models

import "time"

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `json:"-"` // empty for externally authenticated accounts
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	PersonType *PersonType `gorm:"type:varchar(20)" json:"personType,omitempty"`
	TaxID      *string     `json:"taxId,omitempty"` // CPF or CNPJ
	City       string      `json:"city"`

	Premium           bool       `gorm:"default:false" json:"premium"`
	Destaque          bool       `gorm:"default:false" json:"destaque"`
	DestaqueExpiresAt *time.Time `json:"-"`

	// Identity-provider id for accounts created through the delegated
	// auth flow. Unique when present, maps to exactly one user.
	ExternalID *string `gorm:"uniqueIndex" json:"-"`
}

// Highlighted reports the effective highlight state: the purchased flag
// only counts while the 7-day window has not elapsed.
func (u *User) Highlighted(now time.Time) bool {
	if !u.Destaque {
		return false
	}
	return u.DestaqueExpiresAt == nil || now.Before(*u.DestaqueExpiresAt)
}
