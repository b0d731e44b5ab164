package services

import (
	"contrata_backend/internal/models"
	"contrata_backend/internal/repositories"
	"contrata_backend/pkg/apperrors"
)

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) GetCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

// GetSubcategories lists subcategories, optionally narrowed to one
// category.
func (s *CategoryService) GetSubcategories(categoryID string) ([]models.Subcategory, error) {
	subcategories, err := s.categoryRepo.FindSubcategories(categoryID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subcategories, nil
}
