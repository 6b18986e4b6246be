package router

import (
	"cardplanet/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:id", cartHandler.UpdateItem)
	cart.DELETE("/items/:id", cartHandler.RemoveItem)
}
