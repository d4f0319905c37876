package domain

import "time"

// Invoice is created by an external purchase process; this service only reads
type Invoice struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID  int64     `gorm:"index" json:"client_id"`
	PlanID    int64     `gorm:"index" json:"plan_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName Specify table name
func (Invoice) TableName() string {
	return "invoice"
}
