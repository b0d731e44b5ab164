package repositories

import (
	"errors"

	"contrata_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSubcategoryNotFound = errors.New("subcategory not found")

type CategoryRepository interface {
	FindAll() ([]models.Category, error)
	FindSubcategories(categoryID string) ([]models.Subcategory, error)
	FindSubcategoryByID(id string) (*models.Subcategory, error)
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Preload("Subcategories").Order("name").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindSubcategories(categoryID string) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	q := r.db.Order("name")
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	err := q.Find(&subcategories).Error
	return subcategories, err
}

func (r *CategoryRepositoryImpl) FindSubcategoryByID(id string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.Preload("Category").First(&subcategory, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, err
	}
	return &subcategory, nil
}
