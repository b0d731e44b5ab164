package models

type Category struct {
	BaseModel
	Name string `gorm:"not null;uniqueIndex" json:"name"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories,omitempty"`
}

type Subcategory struct {
	BaseModel
	Name       string `gorm:"not null" json:"name"`
	CategoryID string `gorm:"not null;index" json:"categoryId"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
