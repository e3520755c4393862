package service

import (
	"testing"

	"prd_manager/internal/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database with the schema applied.
// The pool is pinned to one connection so every query sees the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := gormDB.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Feature{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gormDB
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
