package app

import (
	"time"

	"github.com/mostevr/cardstock/internal/domain"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	if expr := a.appConfig.Metrics.StockSnapshotCron; expr != "" {
		_, err = a.sched.AddFunc(expr, a.SchedStockSnapshotTask)
		if err != nil {
			zap.S().Errorf("init job error %s", err.Error())
		}
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.gormDB.
			Where("collected_at < ?", time.Now().
				Add(-time.Hour*24*90)).Delete(&domain.StockMetric{})
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedStockSnapshotTask persists per-plan ready/sold/error counts so stock
// depletion can be charted over time.
func (a *Application) SchedStockSnapshotTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	var rows []struct {
		PlanID int64 `gorm:"column:plan_id"`
		Ready  int64 `gorm:"column:ready_count"`
		Sold   int64 `gorm:"column:sold_count"`
		Error  int64 `gorm:"column:error_count"`
	}
	err := a.gormDB.Model(&domain.Stock{}).
		Select("plan_id, "+
			"COALESCE(SUM(CASE WHEN state = ? THEN 1 ELSE 0 END), 0) AS ready_count, "+
			"COALESCE(SUM(CASE WHEN state = ? THEN 1 ELSE 0 END), 0) AS sold_count, "+
			"COALESCE(SUM(CASE WHEN state = ? THEN 1 ELSE 0 END), 0) AS error_count",
			domain.StockStateReady, domain.StockStateSold, domain.StockStateError).
		Group("plan_id").
		Scan(&rows).Error
	if err != nil {
		zap.L().Error("stock snapshot query failed", zap.Error(err))
		return
	}

	now := time.Now()
	for _, r := range rows {
		metric := domain.StockMetric{
			PlanID:      r.PlanID,
			Ready:       r.Ready,
			Sold:        r.Sold,
			Error:       r.Error,
			CollectedAt: now,
		}
		if err := a.gormDB.Create(&metric).Error; err != nil {
			zap.L().Error("failed to write stock metric", zap.Int64("plan_id", r.PlanID), zap.Error(err))
		}
	}
	zap.L().Debug("stock snapshot collected", zap.Int("plans", len(rows)))
}
