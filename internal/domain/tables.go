package domain

var Tables = []interface{}{
	// Catalog
	&Plan{},
	&Stock{},
	// Billing
	&Client{},
	&Invoice{},
	&WalletTransaction{},
	// Metrics
	&StockMetric{},
}
