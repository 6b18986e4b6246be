package router

import (
	"cardplanet/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupSeriesRouter(e *echo.Echo) {
	seriesHandler := handler.GetSeriesHandler()

	e.GET("/v1/series", seriesHandler.ListSeries)
}
