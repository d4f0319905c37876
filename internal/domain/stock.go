package domain

// Stock states. Aggregations match on the exact value, state is never
// transitioned by this service (fulfillment is an external process).
const (
	StockStateReady = "ready"
	StockStateSold  = "sold"
	StockStateError = "error"
)

// Stock is a single prepaid card code sellable to a client
type Stock struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PlanID int64  `gorm:"index" json:"plan_id"`
	Code   string `gorm:"size:255" json:"code"` // the redeemable value
	State  string `gorm:"size:16;index" json:"state"`
}

// TableName Specify table name
func (Stock) TableName() string {
	return "stock"
}
