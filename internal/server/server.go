package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"foodmgmt/internal/config"
	"foodmgmt/internal/handler"
	"foodmgmt/internal/middleware"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	Categories *handler.CategoryHandler
	Suppliers  *handler.SupplierHandler
	Customers  *handler.CustomerHandler
	FoodItems  *handler.FoodItemHandler
	Orders     *handler.OrderHandler
	Dashboard  *handler.DashboardHandler
}

// New はルーティング済みのechoを組み立てる。
// 読み取りは公開、書き込みはJWT必須。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	public := e.Group("")
	protected := e.Group("", middleware.AuthJWT(cfg))

	h.Auth.RegisterRoutes(public)
	h.Categories.RegisterRoutes(public, protected)
	h.Suppliers.RegisterRoutes(public, protected)
	h.Customers.RegisterRoutes(public, protected)
	h.FoodItems.RegisterRoutes(public, protected)
	h.Orders.RegisterRoutes(public, protected)
	h.Dashboard.RegisterRoutes(public)

	return e
}
