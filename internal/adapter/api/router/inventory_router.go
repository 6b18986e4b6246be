package router

import (
	"cardplanet/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupInventoryRouter(e *echo.Echo) {
	inventoryHandler := handler.GetInventoryHandler()

	e.GET("/v1/inventory", inventoryHandler.ListInventory)
	e.GET("/v1/expansions", inventoryHandler.ListExpansions)
}
