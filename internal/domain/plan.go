package domain

// Plan represents a sellable card plan (e.g. "Zain 5K")
type Plan struct {
	ID    int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"index" json:"name"`
	Price float64 `json:"price"` // price in main currency units
}

// TableName Specify table name
func (Plan) TableName() string {
	return "plan"
}
