package domain

// Client holds a wallet balance; the balance is mutated only through
// the top-up endpoint and never goes negative.
type Client struct {
	ID      int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"index" json:"name"`
	Balance float64 `json:"balance"`
}

// TableName Specify table name
func (Client) TableName() string {
	return "client"
}
