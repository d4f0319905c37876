package app

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mostevr/cardstock/config"
	"github.com/mostevr/cardstock/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrator().AutoMigrate(domain.Tables...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	a := NewApplication(config.LoadConfig(""))
	a.OverrideDB(db)
	return a
}

func TestCheckPlansSeedsEmptyTable(t *testing.T) {
	a := newTestApplication(t)

	a.checkPlans()

	var count int64
	if err := a.gormDB.Model(&domain.Plan{}).Count(&count).Error; err != nil {
		t.Fatalf("count plans: %v", err)
	}
	if count == 0 {
		t.Fatal("expected seeded plans on empty table")
	}

	// Idempotent: a second run must not duplicate the catalog.
	a.checkPlans()
	var again int64
	if err := a.gormDB.Model(&domain.Plan{}).Count(&again).Error; err != nil {
		t.Fatalf("count plans: %v", err)
	}
	if again != count {
		t.Fatalf("plans grew from %d to %d on second run", count, again)
	}
}

func TestCheckPlansKeepsExistingCatalog(t *testing.T) {
	a := newTestApplication(t)

	custom := domain.Plan{Name: "Korek 25K", Price: 25000}
	if err := a.gormDB.Create(&custom).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	a.checkPlans()

	var count int64
	if err := a.gormDB.Model(&domain.Plan{}).Count(&count).Error; err != nil {
		t.Fatalf("count plans: %v", err)
	}
	if count != 1 {
		t.Fatalf("plans = %d, want 1 (no seeding over existing catalog)", count)
	}
}
