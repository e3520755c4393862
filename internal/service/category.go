package service

import (
	"context"
	"errors"
	"strconv"

	"prd_manager/internal/apperror"
	"prd_manager/internal/domain"

	"gorm.io/gorm"
)

// CategoryService owns the category half of the hierarchy store,
// including sequential ID allocation and the cascading delete.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService constructs the service with its dependencies.
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CategoryPatch is a partial update; nil fields are left unchanged.
type CategoryPatch struct {
	Name        *string
	Description *string
}

// Create allocates the next sequential ID and inserts the category.
// Count and insert run in one transaction so concurrent creations
// cannot both observe the same count.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	if name == "" {
		return nil, apperror.NewValidationError("Name is required")
	}
	var category domain.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Category{}).Count(&count).Error; err != nil {
			return err
		}
		category = domain.Category{
			ID:          strconv.FormatInt(count+1, 10),
			Name:        name,
			Description: description,
		}
		return tx.Create(&category).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Category ID already allocated")
		}
		return nil, apperror.NewInternalError("failed to create category", err)
	}
	category.Features = []domain.Feature{}
	return &category, nil
}

// List returns all categories with their features, in insertion order.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := s.db.WithContext(ctx).
		Preload("Features", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Order("created_at ASC").
		Find(&categories).Error
	if err != nil {
		return nil, apperror.NewInternalError("failed to fetch categories", err)
	}
	for i := range categories {
		if categories[i].Features == nil {
			categories[i].Features = []domain.Feature{}
		}
	}
	return categories, nil
}

// Get returns one category with its features.
func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	var category domain.Category
	err := s.db.WithContext(ctx).
		Preload("Features", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Category not found")
		}
		return nil, apperror.NewInternalError("failed to fetch category", err)
	}
	if category.Features == nil {
		category.Features = []domain.Feature{}
	}
	return &category, nil
}

// Update applies the supplied fields only; omitted fields keep their values.
func (s *CategoryService) Update(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error) {
	var category domain.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return err
		}
		if patch.Name != nil {
			category.Name = *patch.Name
		}
		if patch.Description != nil {
			category.Description = *patch.Description
		}
		return tx.Save(&category).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Category not found")
		}
		return nil, apperror.NewInternalError("failed to update category", err)
	}
	return &category, nil
}

// Delete removes the category and every feature it owns in one transaction.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category domain.Category
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return err
		}
		// Dependent features go first, then the category itself
		if err := tx.Where("category_id = ?", id).Delete(&domain.Feature{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFoundError("Category not found")
		}
		return apperror.NewInternalError("failed to delete category", err)
	}
	return nil
}
