package service

import (
	"context"
	"testing"

	"prd_manager/internal/apperror"
	"prd_manager/internal/domain"
)

func TestCreateCategorySequentialIDs(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	ctx := context.Background()

	foo, err := categories.Create(ctx, "Foo", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	bar, err := categories.Create(ctx, "Bar", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if foo.ID != "1" || bar.ID != "2" {
		t.Fatalf("expected ids 1 and 2, got %q and %q", foo.ID, bar.ID)
	}
	if foo.Features == nil || len(foo.Features) != 0 {
		t.Fatalf("new category should carry an empty feature list")
	}
}

func TestCreateCategoryMissingName(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)

	if _, err := categories.Create(context.Background(), "", "desc"); !apperror.IsValidation(err) {
		t.Fatalf("expected Validation, got %v", err)
	}
}

func TestUpdateCategoryPartial(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	ctx := context.Background()

	if _, err := categories.Create(ctx, "Auth", "login and friends"); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Name only: description keeps its value
	got, err := categories.Update(ctx, "1", CategoryPatch{Name: strPtr("Authentication")})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "Authentication" || got.Description != "login and friends" {
		t.Fatalf("partial update leaked: name=%q desc=%q", got.Name, got.Description)
	}

	// Description only: name keeps its value
	got, err = categories.Update(ctx, "1", CategoryPatch{Description: strPtr("updated")})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "Authentication" || got.Description != "updated" {
		t.Fatalf("partial update leaked: name=%q desc=%q", got.Name, got.Description)
	}
}

func TestCategoryNotFound(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	ctx := context.Background()

	if _, err := categories.Get(ctx, "9"); !apperror.IsNotFound(err) {
		t.Fatalf("Get: expected NotFound, got %v", err)
	}
	if _, err := categories.Update(ctx, "9", CategoryPatch{Name: strPtr("x")}); !apperror.IsNotFound(err) {
		t.Fatalf("Update: expected NotFound, got %v", err)
	}
	if err := categories.Delete(ctx, "9"); !apperror.IsNotFound(err) {
		t.Fatalf("Delete: expected NotFound, got %v", err)
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	features := NewFeatureService(db)
	ctx := context.Background()

	cat, err := categories.Create(ctx, "Auth", "")
	if err != nil {
		t.Fatalf("Create category error: %v", err)
	}
	for _, title := range []string{"Login", "Logout", "Reset"} {
		if _, err := features.Create(ctx, cat.ID, FeatureInput{Title: title}); err != nil {
			t.Fatalf("Create feature error: %v", err)
		}
	}

	if err := categories.Delete(ctx, cat.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	for _, id := range []string{"1.1", "1.2", "1.3"} {
		if _, err := features.Get(ctx, id); !apperror.IsNotFound(err) {
			t.Fatalf("feature %s survived the cascade: %v", id, err)
		}
	}
	var count int64
	if err := db.Model(&domain.Feature{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 features after cascade, got %d", count)
	}
}

func TestListCategoriesNestsFeatures(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	features := NewFeatureService(db)
	ctx := context.Background()

	if _, err := categories.Create(ctx, "Auth", ""); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := categories.Create(ctx, "Billing", ""); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := features.Create(ctx, "1", FeatureInput{Title: "Login"}); err != nil {
		t.Fatalf("Create feature error: %v", err)
	}

	list, err := categories.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(list))
	}
	if list[0].ID != "1" || list[1].ID != "2" {
		t.Fatalf("wrong order: %q, %q", list[0].ID, list[1].ID)
	}
	if len(list[0].Features) != 1 || list[0].Features[0].ID != "1.1" {
		t.Fatalf("expected nested feature 1.1, got %+v", list[0].Features)
	}
	// Feature-less categories still serialize an empty list, not null
	if list[1].Features == nil {
		t.Fatalf("expected non-nil empty feature list")
	}
}
