package domain

import "time"

// WalletTransaction is the journal row written for every successful top-up,
// inside the same transaction as the balance update.
type WalletTransaction struct {
	ID           int64     `json:"id,string"`
	ClientID     int64     `gorm:"index" json:"client_id"`
	Amount       float64   `json:"amount"`
	BalanceAfter float64   `json:"balance_after"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

// TableName Specify table name
func (WalletTransaction) TableName() string {
	return "wallet_transaction"
}
