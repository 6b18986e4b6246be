package router

import (
	"cardplanet/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo) {
	orderHandler := handler.GetOrderHandler()

	e.POST("/v1/checkout", orderHandler.Checkout)

	admin := e.Group("/v1/admin/orders")
	admin.GET("", orderHandler.ListOrders)
	admin.PUT("/:id/status", orderHandler.UpdateOrderStatus)
}
