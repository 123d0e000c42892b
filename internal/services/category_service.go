package services

import (
	"gorm.io/gorm"

	apperrors "fintracker/internal/errors"
	"fintracker/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns all categories grouped by type, each group
// ordered by name. Both type keys are always present so clients can
// rely on the shape even when a group is empty.
func (s *categoryService) ListCategories() (map[models.CategoryType][]string, error) {
	var categories []models.Category
	if err := s.db.Order("type, category").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := map[models.CategoryType][]string{
		models.CategoryTypeIncome:  {},
		models.CategoryTypeExpense: {},
	}
	for _, category := range categories {
		result[category.Type] = append(result[category.Type], category.Name)
	}
	return result, nil
}

// AddCategory inserts a new (type, name) pair. Adding a pair that
// already exists fails with ErrDuplicateCategory and has no side effect.
func (s *categoryService) AddCategory(categoryType models.CategoryType, name string) (*models.Category, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("type = ? AND category = ?", categoryType, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{Type: categoryType, Name: name}
	if err := s.db.Create(category).Error; err != nil {
		// The unique index backs the pre-check under concurrent adds.
		return nil, apperrors.Wrap(apperrors.ErrDuplicateCategory, err)
	}
	return category, nil
}

// RemoveCategory deletes the matching pair. Uniqueness guarantees at
// most one row can match; zero matches is ErrCategoryNotFound.
func (s *categoryService) RemoveCategory(categoryType models.CategoryType, name string) error {
	res := s.db.Where("type = ? AND category = ?", categoryType, name).Delete(&models.Category{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
