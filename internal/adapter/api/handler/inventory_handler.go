package handler

import (
	"strconv"

	"cardplanet/internal/domain/entity"
	"cardplanet/internal/usecase"
	"cardplanet/pkg/errors"
	"cardplanet/pkg/response"
	"cardplanet/pkg/utils"

	"github.com/labstack/echo/v4"
)

type InventoryHandler struct {
	inventoryUseCase *usecase.InventoryUseCase
	catalogUseCase   *usecase.CatalogUseCase
}

func NewInventoryHandler(inventoryUseCase *usecase.InventoryUseCase, catalogUseCase *usecase.CatalogUseCase) *InventoryHandler {
	return &InventoryHandler{
		inventoryUseCase: inventoryUseCase,
		catalogUseCase:   catalogUseCase,
	}
}

// ListInventory derives the visible inventory from the query parameters:
// one parameter per filter, plus sort, search and pagination.
func (h *InventoryHandler) ListInventory(c echo.Context) error {
	filters, err := filtersFromQuery(c)
	if err != nil {
		return response.Error(c, err)
	}

	sortOption := entity.SortOption(c.QueryParam("sort"))
	if !sortOption.Valid() {
		return response.Error(c, errors.BadRequest("Invalid sort option", nil))
	}

	cards, err := h.inventoryUseCase.Visible(c.Request().Context(), filters, sortOption, c.QueryParam("search"))
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)
	total := int64(len(cards))

	start := pagination.Offset
	if start > len(cards) {
		start = len(cards)
	}
	end := start + pagination.PageSize
	if end > len(cards) {
		end = len(cards)
	}

	return response.Paginated(c, cards[start:end], total, pagination.Page, pagination.PageSize)
}

func (h *InventoryHandler) ListExpansions(c echo.Context) error {
	expansions, err := h.catalogUseCase.Expansions(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, expansions)
}

func filtersFromQuery(c echo.Context) (entity.FilterState, error) {
	filters := entity.DefaultFilterState()

	filters.CardType = c.QueryParam("card_type")
	filters.Rarity = c.QueryParam("rarity")
	filters.Condition = c.QueryParam("condition")
	filters.Expansion = c.QueryParam("expansion")
	filters.Language = c.QueryParam("language")

	if raw := c.QueryParam("reverse_only"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, errors.BadRequest("Invalid reverse_only value", err)
		}
		filters.ReverseOnly = value
	}

	if raw := c.QueryParam("price_min"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.BadRequest("Invalid price_min value", err)
		}
		filters.PriceRange[0] = value
	}

	if raw := c.QueryParam("price_max"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.BadRequest("Invalid price_max value", err)
		}
		filters.PriceRange[1] = value
	}

	return filters.Normalize(), nil
}
