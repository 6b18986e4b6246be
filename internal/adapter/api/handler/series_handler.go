package handler

import (
	"cardplanet/internal/usecase"
	"cardplanet/pkg/response"

	"github.com/labstack/echo/v4"
)

type SeriesHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewSeriesHandler(catalogUseCase *usecase.CatalogUseCase) *SeriesHandler {
	return &SeriesHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *SeriesHandler) ListSeries(c echo.Context) error {
	search := c.QueryParam("search")
	tab := c.QueryParam("tab")

	series, err := h.catalogUseCase.SeriesView(c.Request().Context(), search, tab)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, series)
}
