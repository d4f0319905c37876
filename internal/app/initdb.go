package app

import (
	"github.com/mostevr/cardstock/internal/domain"
	"go.uber.org/zap"
)

// checkPlans seeds a demo catalog when the plan table is empty so a fresh
// install has something to sell against.
func (a *Application) checkPlans() {
	var count int64
	if err := a.gormDB.Model(&domain.Plan{}).Count(&count).Error; err != nil {
		zap.L().Error("failed to count plans", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	defaultPlans := []domain.Plan{
		{Name: "Zain 5K", Price: 5000},
		{Name: "Zain 10K", Price: 10000},
		{Name: "Asiacell 5K", Price: 5000},
		{Name: "Google Play 10$", Price: 14500},
	}

	for _, p := range defaultPlans {
		if err := a.gormDB.Create(&p).Error; err != nil {
			zap.L().Error("failed to create default plan", zap.String("name", p.Name), zap.Error(err))
		} else {
			zap.L().Info("initialized default plan", zap.String("name", p.Name))
		}
	}
}
