package server

import (
	"pos/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はミドルウェアとルートを組んだechoを返す。
func New(
	productH *handler.ProductHandler,
	saleH *handler.SaleHandler,
	dashboardH *handler.DashboardHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	//レジ画面（public/）をそのまま配信
	e.Static("/", "public")

	RegisterRoutes(e, productH, saleH, dashboardH)
	return e
}
