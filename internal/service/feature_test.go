package service

import (
	"context"
	"testing"

	"prd_manager/internal/apperror"
	"prd_manager/internal/domain"
)

func setupCategory(t *testing.T, categories *CategoryService, name string) *domain.Category {
	t.Helper()
	cat, err := categories.Create(context.Background(), name, "")
	if err != nil {
		t.Fatalf("Create category error: %v", err)
	}
	return cat
}

func TestCreateFeatureSequentialIDsPerCategory(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	features := NewFeatureService(db)
	ctx := context.Background()

	auth := setupCategory(t, categories, "Auth")
	billing := setupCategory(t, categories, "Billing")

	for i, title := range []string{"Login", "Logout", "Reset"} {
		f, err := features.Create(ctx, auth.ID, FeatureInput{Title: title})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		want := []string{"1.1", "1.2", "1.3"}[i]
		if f.ID != want {
			t.Fatalf("feature id = %q, want %q", f.ID, want)
		}
	}

	// The counter is scoped per category, not global
	f, err := features.Create(ctx, billing.ID, FeatureInput{Title: "Invoices"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if f.ID != "2.1" {
		t.Fatalf("feature id = %q, want 2.1", f.ID)
	}
}

func TestCreateFeatureDefaults(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	features := NewFeatureService(db)

	setupCategory(t, categories, "Auth")
	f, err := features.Create(context.Background(), "1", FeatureInput{Title: "Login"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if f.Priority != domain.PriorityMedium {
		t.Fatalf("priority = %q, want Medium", f.Priority)
	}
	if f.EngineeringComplexity != domain.SizeM {
		t.Fatalf("complexity = %q, want M", f.EngineeringComplexity)
	}
	if f.EngineeringSignoff {
		t.Fatalf("signoff should default to false")
	}
}

func TestCreateFeatureValidation(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	features := NewFeatureService(db)
	ctx := context.Background()

	setupCategory(t, categories, "Auth")

	if _, err := features.Create(ctx, "1", FeatureInput{}); !apperror.IsValidation(err) {
		t.Fatalf("missing title: expected Validation, got %v", err)
	}
	if _, err := features.Create(ctx, "1", FeatureInput{Title: "X", Priority: "Urgent"}); !apperror.IsValidation(err) {
		t.Fatalf("bad priority: expected Validation, got %v", err)
	}
	if _, err := features.Create(ctx, "1", FeatureInput{Title: "X", EngineeringComplexity: "XXL"}); !apperror.IsValidation(err) {
		t.Fatalf("bad complexity: expected Validation, got %v", err)
	}

	// Nothing was persisted by the rejected creates
	var count int64
	if err := db.Model(&domain.Feature{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 features, got %d", count)
	}
}

func TestCreateFeatureUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	features := NewFeatureService(db)

	if _, err := features.Create(context.Background(), "9", FeatureInput{Title: "X"}); !apperror.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestUpdateFeaturePartial(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	features := NewFeatureService(db)
	ctx := context.Background()

	setupCategory(t, categories, "Auth")
	orig, err := features.Create(ctx, "1", FeatureInput{
		Title:                 "Login",
		Priority:              domain.PriorityHigh,
		Description:           "password login",
		KPI:                   "conversion +5%",
		CustomerName:          "Web",
		EngineeringComment:    "needs session store",
		EngineeringSignoff:    true,
		EngineeringComplexity: domain.SizeL,
		ReleaseDate:           "2024-03",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := features.Update(ctx, orig.ID, FeaturePatch{Title: strPtr("X")})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Title != "X" {
		t.Fatalf("title = %q, want X", got.Title)
	}
	// Everything else keeps its prior value
	if got.Priority != domain.PriorityHigh ||
		got.Description != "password login" ||
		got.KPI != "conversion +5%" ||
		got.CustomerName != "Web" ||
		got.EngineeringComment != "needs session store" ||
		!got.EngineeringSignoff ||
		got.EngineeringComplexity != domain.SizeL ||
		got.ReleaseDate != "2024-03" {
		t.Fatalf("partial update clobbered other fields: %+v", got)
	}

	// Booleans can be flipped to false explicitly
	got, err = features.Update(ctx, orig.ID, FeaturePatch{EngineeringSignoff: boolPtr(false)})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.EngineeringSignoff {
		t.Fatalf("signoff should be false")
	}
}

func TestUpdateFeatureInvalidEnum(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	features := NewFeatureService(db)
	ctx := context.Background()

	setupCategory(t, categories, "Auth")
	if _, err := features.Create(ctx, "1", FeatureInput{Title: "Login"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	bad := domain.Priority("Urgent")
	if _, err := features.Update(ctx, "1.1", FeaturePatch{Priority: &bad}); !apperror.IsValidation(err) {
		t.Fatalf("expected Validation, got %v", err)
	}
	got, err := features.Get(ctx, "1.1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Priority != domain.PriorityMedium {
		t.Fatalf("rejected update mutated the record: %q", got.Priority)
	}
}

func TestFeatureNotFound(t *testing.T) {
	db := newTestDB(t)
	features := NewFeatureService(db)
	ctx := context.Background()

	if _, err := features.Get(ctx, "1.1"); !apperror.IsNotFound(err) {
		t.Fatalf("Get: expected NotFound, got %v", err)
	}
	if _, err := features.Update(ctx, "1.1", FeaturePatch{Title: strPtr("X")}); !apperror.IsNotFound(err) {
		t.Fatalf("Update: expected NotFound, got %v", err)
	}
	if err := features.Delete(ctx, "1.1"); !apperror.IsNotFound(err) {
		t.Fatalf("Delete: expected NotFound, got %v", err)
	}
}

func TestDeleteFeature(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	features := NewFeatureService(db)
	ctx := context.Background()

	setupCategory(t, categories, "Auth")
	if _, err := features.Create(ctx, "1", FeatureInput{Title: "Login"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := features.Delete(ctx, "1.1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := features.Get(ctx, "1.1"); !apperror.IsNotFound(err) {
		t.Fatalf("expected NotFound after delete, got %v", err)
	}
}
