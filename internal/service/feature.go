package service

import (
	"context"
	"errors"
	"fmt"

	"prd_manager/internal/apperror"
	"prd_manager/internal/domain"

	"gorm.io/gorm"
)

// FeatureService owns the feature half of the hierarchy store.
type FeatureService struct {
	db *gorm.DB
}

// NewFeatureService constructs the service with its dependencies.
func NewFeatureService(db *gorm.DB) *FeatureService {
	return &FeatureService{db: db}
}

// FeatureInput carries the creatable fields of a feature. Empty enum
// values fall back to their defaults (Medium priority, size M).
type FeatureInput struct {
	Title                 string
	Priority              domain.Priority
	Description           string
	KPI                   string
	CustomerName          string
	EngineeringComment    string
	EngineeringSignoff    bool
	EngineeringComplexity domain.TShirtSize
	ReleaseDate           string
}

// FeaturePatch is a partial update; nil fields are left unchanged.
type FeaturePatch struct {
	Title                 *string
	Priority              *domain.Priority
	Description           *string
	KPI                   *string
	CustomerName          *string
	EngineeringComment    *string
	EngineeringSignoff    *bool
	EngineeringComplexity *domain.TShirtSize
	ReleaseDate           *string
}

// Create inserts a feature under the given category, allocating the
// "<category>.<n>" ID from the per-category feature count. Count and
// insert share one transaction.
func (s *FeatureService) Create(ctx context.Context, categoryID string, in FeatureInput) (*domain.Feature, error) {
	if in.Title == "" {
		return nil, apperror.NewValidationError("Title is required")
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid priority %q", in.Priority))
	}
	if in.EngineeringComplexity == "" {
		in.EngineeringComplexity = domain.SizeM
	}
	if !in.EngineeringComplexity.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid engineering complexity %q", in.EngineeringComplexity))
	}

	var feature domain.Feature
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category domain.Category
		if err := tx.First(&category, "id = ?", categoryID).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&domain.Feature{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
			return err
		}
		feature = domain.Feature{
			ID:                    fmt.Sprintf("%s.%d", categoryID, count+1),
			CategoryID:            categoryID,
			Title:                 in.Title,
			Priority:              in.Priority,
			Description:           in.Description,
			KPI:                   in.KPI,
			CustomerName:          in.CustomerName,
			EngineeringComment:    in.EngineeringComment,
			EngineeringSignoff:    in.EngineeringSignoff,
			EngineeringComplexity: in.EngineeringComplexity,
			ReleaseDate:           in.ReleaseDate,
		}
		return tx.Create(&feature).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Category not found")
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Feature ID already allocated")
		}
		return nil, apperror.NewInternalError("failed to create feature", err)
	}
	return &feature, nil
}

// ListByCategory returns the category's features in creation order.
func (s *FeatureService) ListByCategory(ctx context.Context, categoryID string) ([]domain.Feature, error) {
	features := []domain.Feature{}
	err := s.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&features).Error
	if err != nil {
		return nil, apperror.NewInternalError("failed to fetch features", err)
	}
	return features, nil
}

// Get fetches a feature by ID.
func (s *FeatureService) Get(ctx context.Context, id string) (*domain.Feature, error) {
	var feature domain.Feature
	if err := s.db.WithContext(ctx).First(&feature, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Feature not found")
		}
		return nil, apperror.NewInternalError("failed to fetch feature", err)
	}
	return &feature, nil
}

// Update applies the supplied fields only. Supplied enum values are
// validated against the closed sets, never coerced.
func (s *FeatureService) Update(ctx context.Context, id string, patch FeaturePatch) (*domain.Feature, error) {
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid priority %q", *patch.Priority))
	}
	if patch.EngineeringComplexity != nil && !patch.EngineeringComplexity.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid engineering complexity %q", *patch.EngineeringComplexity))
	}

	var feature domain.Feature
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&feature, "id = ?", id).Error; err != nil {
			return err
		}
		if patch.Title != nil {
			feature.Title = *patch.Title
		}
		if patch.Priority != nil {
			feature.Priority = *patch.Priority
		}
		if patch.Description != nil {
			feature.Description = *patch.Description
		}
		if patch.KPI != nil {
			feature.KPI = *patch.KPI
		}
		if patch.CustomerName != nil {
			feature.CustomerName = *patch.CustomerName
		}
		if patch.EngineeringComment != nil {
			feature.EngineeringComment = *patch.EngineeringComment
		}
		if patch.EngineeringSignoff != nil {
			feature.EngineeringSignoff = *patch.EngineeringSignoff
		}
		if patch.EngineeringComplexity != nil {
			feature.EngineeringComplexity = *patch.EngineeringComplexity
		}
		if patch.ReleaseDate != nil {
			feature.ReleaseDate = *patch.ReleaseDate
		}
		return tx.Save(&feature).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Feature not found")
		}
		return nil, apperror.NewInternalError("failed to update feature", err)
	}
	return &feature, nil
}

// Delete removes a single feature.
func (s *FeatureService) Delete(ctx context.Context, id string) error {
	var feature domain.Feature
	if err := s.db.WithContext(ctx).First(&feature, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFoundError("Feature not found")
		}
		return apperror.NewInternalError("failed to fetch feature", err)
	}
	if err := s.db.WithContext(ctx).Delete(&feature).Error; err != nil {
		return apperror.NewInternalError("failed to delete feature", err)
	}
	return nil
}
