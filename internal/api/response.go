package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Fixed generic message for unclassified failures. Deliberately opaque and
// localized, never a driver diagnostic.
const msgInternalError = "اكو مشكله بالدنيا..."

const (
	msgClientNotFound = "Client not found"
	msgPlanNotFound   = "Plan not found"
	msgInvalidAmount  = "Invalid amount"
	msgNoInvoices     = "no invoice founded"
	msgNoCodes        = "there is no codes inserted"
)

// Result listings are capped; invoices and journal rows return newest first.
const listLimit = 50

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"message": message})
}

func internalError(c echo.Context, op string, err error) error {
	zap.L().Error("handler failure", zap.String("op", op), zap.Error(err))
	return fail(c, http.StatusInternalServerError, msgInternalError)
}
