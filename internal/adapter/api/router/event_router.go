package router

import (
	"cardplanet/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupEventRouter(e *echo.Echo, eventHandler *handler.EventHandler) {
	e.GET("/v1/events", eventHandler.HandleEvents)
}
