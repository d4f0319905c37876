package app

import (
	"testing"

	"github.com/mostevr/cardstock/internal/domain"
)

func TestStockSnapshotTask(t *testing.T) {
	a := newTestApplication(t)

	plan := domain.Plan{Name: "Zain 5K", Price: 5000}
	if err := a.gormDB.Create(&plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	for _, s := range []domain.Stock{
		{PlanID: plan.ID, Code: "A1", State: domain.StockStateReady},
		{PlanID: plan.ID, Code: "A2", State: domain.StockStateReady},
		{PlanID: plan.ID, Code: "A3", State: domain.StockStateSold},
		{PlanID: plan.ID, Code: "A4", State: domain.StockStateError},
	} {
		s := s
		if err := a.gormDB.Create(&s).Error; err != nil {
			t.Fatalf("seed stock: %v", err)
		}
	}

	a.SchedStockSnapshotTask()

	var metrics []domain.StockMetric
	if err := a.gormDB.Find(&metrics).Error; err != nil {
		t.Fatalf("load metrics: %v", err)
	}
	if len(metrics) != 1 {
		t.Fatalf("metrics = %d, want 1", len(metrics))
	}
	m := metrics[0]
	if m.PlanID != plan.ID || m.Ready != 2 || m.Sold != 1 || m.Error != 1 {
		t.Fatalf("unexpected metric %+v", m)
	}
	if m.CollectedAt.IsZero() {
		t.Fatal("collected_at not set")
	}
}

func TestStockSnapshotTaskEmpty(t *testing.T) {
	a := newTestApplication(t)

	a.SchedStockSnapshotTask()

	var count int64
	if err := a.gormDB.Model(&domain.StockMetric{}).Count(&count).Error; err != nil {
		t.Fatalf("count metrics: %v", err)
	}
	if count != 0 {
		t.Fatalf("metrics = %d, want 0", count)
	}
}
