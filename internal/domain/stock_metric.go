package domain

import "time"

// StockMetric is a periodic per-plan snapshot of stock counts written by the
// scheduler, retained for 90 days.
type StockMetric struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PlanID      int64     `gorm:"index" json:"plan_id"`
	Ready       int64     `json:"ready"`
	Sold        int64     `json:"sold"`
	Error       int64     `json:"error"`
	CollectedAt time.Time `gorm:"index" json:"collected_at"`
}

// TableName Specify table name
func (StockMetric) TableName() string {
	return "stock_metric"
}
