package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mostevr/cardstock/internal/app"
	"github.com/mostevr/cardstock/internal/domain"
	"github.com/mostevr/cardstock/internal/webserver"
)

type stockBatchPayload struct {
	PlanID int64    `json:"planId"`
	Codes  []string `json:"codes" validate:"required,min=1,dive,required"`
}

type availableRow struct {
	PlanID    int64  `gorm:"column:plan_id" json:"planId"`
	PlanName  string `gorm:"column:plan_name" json:"planName"`
	Available int64  `gorm:"column:state_count" json:"available"`
}

type soldRow struct {
	PlanID   int64  `gorm:"column:plan_id" json:"planId"`
	PlanName string `gorm:"column:plan_name" json:"planName"`
	Sold     int64  `gorm:"column:state_count" json:"sold"`
}

type stockBatchResponse struct {
	Inserted int `json:"inserted"`
}

// registerStockRoutes registers stock query and batch insert endpoints
func registerStockRoutes() {
	webserver.ApiGET("/stock/available", listAvailableStock)
	webserver.ApiGET("/stock/sold", listSoldStock)
	webserver.ApiPOST("/stock/batch", batchCreateStock)
}

// countStockByState groups stock rows of one state by plan. Inner-join
// semantics: plans with zero matching rows are omitted.
func countStockByState(c echo.Context, state string, dest interface{}) error {
	return webserver.GetDB(c).Model(&domain.Stock{}).
		Select("plan.id AS plan_id, plan.name AS plan_name, COUNT(stock.id) AS state_count").
		Joins("JOIN plan ON plan.id = stock.plan_id").
		Where("stock.state = ?", state).
		Group("plan.id, plan.name").
		Order("plan.id").
		Scan(dest).Error
}

func listAvailableStock(c echo.Context) error {
	rows := make([]availableRow, 0)
	if err := countStockByState(c, domain.StockStateReady, &rows); err != nil {
		return internalError(c, "stock available", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func listSoldStock(c echo.Context) error {
	rows := make([]soldRow, 0)
	if err := countStockByState(c, domain.StockStateSold, &rows); err != nil {
		return internalError(c, "stock sold", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func batchCreateStock(c echo.Context) error {
	var payload stockBatchPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, msgNoCodes)
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, msgNoCodes)
	}

	rows := make([]domain.Stock, 0, len(payload.Codes))
	for _, code := range payload.Codes {
		rows = append(rows, domain.Stock{
			PlanID: payload.PlanID,
			Code:   code,
			State:  domain.StockStateReady,
		})
	}

	// One parameterized multi-row INSERT; codes are always bound as values.
	if err := webserver.GetDB(c).Create(&rows).Error; err != nil {
		return internalError(c, "stock batch", err)
	}

	if bus := webserver.GetBus(c); bus != nil {
		bus.Publish(app.TopicStockBatch, payload.PlanID, len(rows))
	}

	return c.JSON(http.StatusOK, stockBatchResponse{Inserted: len(rows)})
}
