package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mostevr/cardstock/internal/domain"
	"github.com/mostevr/cardstock/internal/webserver"
	"gorm.io/gorm"
)

type planStockResponse struct {
	PlanID   int64  `json:"planId"`
	PlanName string `json:"planName"`
	Ready    int64  `json:"ready"`
	Sold     int64  `json:"sold"`
	Error    int64  `json:"error"`
}

// registerPlanRoutes registers plan catalog endpoints. The listing is
// reachable under two paths, kept for callers of the legacy alias.
func registerPlanRoutes() {
	webserver.ApiGET("/plans", listPlans)
	webserver.ApiGET("/plans/list", listPlans)
	webserver.ApiGET("/plans/:id/stock", getPlanStock)
}

func listPlans(c echo.Context) error {
	plans := make([]domain.Plan, 0)
	if err := webserver.GetDB(c).Order("id").Find(&plans).Error; err != nil {
		return internalError(c, "list plans", err)
	}
	return c.JSON(http.StatusOK, plans)
}

func getPlanStock(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusNotFound, msgPlanNotFound)
	}

	db := webserver.GetDB(c)

	// The plan is looked up on its own so a plan with zero stock rows is not
	// mistaken for a missing plan.
	var plan domain.Plan
	if err := db.Where("id = ?", id).First(&plan).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, msgPlanNotFound)
	} else if err != nil {
		return internalError(c, "plan stock", err)
	}

	var sums struct {
		Ready int64 `gorm:"column:ready_count"`
		Sold  int64 `gorm:"column:sold_count"`
		Error int64 `gorm:"column:error_count"`
	}
	err = db.Model(&domain.Stock{}).
		Select("COALESCE(SUM(CASE WHEN state = ? THEN 1 ELSE 0 END), 0) AS ready_count, "+
			"COALESCE(SUM(CASE WHEN state = ? THEN 1 ELSE 0 END), 0) AS sold_count, "+
			"COALESCE(SUM(CASE WHEN state = ? THEN 1 ELSE 0 END), 0) AS error_count",
			domain.StockStateReady, domain.StockStateSold, domain.StockStateError).
		Where("plan_id = ?", id).
		Scan(&sums).Error
	if err != nil {
		return internalError(c, "plan stock", err)
	}

	return c.JSON(http.StatusOK, planStockResponse{
		PlanID:   plan.ID,
		PlanName: plan.Name,
		Ready:    sums.Ready,
		Sold:     sums.Sold,
		Error:    sums.Error,
	})
}
