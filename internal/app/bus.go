package app

import (
	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// Bus topics published by the HTTP layer.
const (
	TopicWalletTopup = "wallet.topup"
	TopicStockBatch  = "stock.batch"
)

func (a *Application) initBus() {
	a.bus = EventBus.New()

	if err := a.bus.Subscribe(TopicWalletTopup, func(clientID int64, amount, newBalance float64) {
		zap.L().Info("wallet topup",
			zap.Int64("client_id", clientID),
			zap.Float64("amount", amount),
			zap.Float64("new_balance", newBalance))
	}); err != nil {
		zap.S().Errorf("bus subscribe error %s", err.Error())
	}

	if err := a.bus.Subscribe(TopicStockBatch, func(planID int64, inserted int) {
		zap.L().Info("stock batch inserted",
			zap.Int64("plan_id", planID),
			zap.Int("inserted", inserted))
	}); err != nil {
		zap.S().Errorf("bus subscribe error %s", err.Error())
	}
}
