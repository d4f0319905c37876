package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mostevr/cardstock/internal/domain"
	"github.com/mostevr/cardstock/internal/webserver"
)

type invoiceRow struct {
	ID        int64     `json:"id"`
	PlanID    int64     `json:"plan_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// registerInvoiceRoutes registers invoice read endpoints
func registerInvoiceRoutes() {
	webserver.ApiGET("/invoice/client/:id", listClientInvoices)
}

func listClientInvoices(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusNotFound, msgClientNotFound)
	}

	db := webserver.GetDB(c)

	// A missing client and a client without invoices answer differently.
	var exists int64
	if err := db.Model(&domain.Client{}).Where("id = ?", id).Count(&exists).Error; err != nil {
		return internalError(c, "client invoices", err)
	}
	if exists == 0 {
		return fail(c, http.StatusNotFound, msgClientNotFound)
	}

	var invoices []domain.Invoice
	if err := db.Where("client_id = ?", id).
		Order("created_at DESC").
		Limit(listLimit).
		Find(&invoices).Error; err != nil {
		return internalError(c, "client invoices", err)
	}
	if len(invoices) == 0 {
		return fail(c, http.StatusNotFound, msgNoInvoices)
	}

	rows := make([]invoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, invoiceRow{
			ID:        inv.ID,
			PlanID:    inv.PlanID,
			Amount:    inv.Amount,
			CreatedAt: inv.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, rows)
}
