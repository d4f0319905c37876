package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mostevr/cardstock/internal/webserver"
)

// InitRouter registers the full HTTP surface on the web server.
func InitRouter() {
	webserver.ApiGET("/", index)
	registerClientRoutes()
	registerPlanRoutes()
	registerStockRoutes()
	registerInvoiceRoutes()
}

func index(c echo.Context) error {
	return c.String(http.StatusOK, "Server is live ...")
}
