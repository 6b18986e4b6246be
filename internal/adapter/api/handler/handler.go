package handler

import (
	"cardplanet/internal/usecase"
)

var (
	healthHandler    *HealthHandler
	seriesHandler    *SeriesHandler
	inventoryHandler *InventoryHandler
	cartHandler      *CartHandler
	orderHandler     *OrderHandler
)

func Setup(
	catalogUseCase *usecase.CatalogUseCase,
	inventoryUseCase *usecase.InventoryUseCase,
	cartUseCase *usecase.CartUseCase,
	orderUseCase *usecase.OrderUseCase,
) {
	healthHandler = NewHealthHandler()
	seriesHandler = NewSeriesHandler(catalogUseCase)
	inventoryHandler = NewInventoryHandler(inventoryUseCase, catalogUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetSeriesHandler() *SeriesHandler {
	return seriesHandler
}

func GetInventoryHandler() *InventoryHandler {
	return inventoryHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}
