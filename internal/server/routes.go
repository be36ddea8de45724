package server

import (
	"pos/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	saleH *handler.SaleHandler,
	dashboardH *handler.DashboardHandler,
) {
	productH.RegisterRoutes(e)
	saleH.RegisterRoutes(e)
	dashboardH.RegisterRoutes(e)
}
