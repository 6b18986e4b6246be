package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cardplanet/internal/usecase"
	"cardplanet/pkg/response"
)

const sessionHeader = "X-Session-ID"

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

// sessionID reads the cart session from the request header, minting a
// fresh one when the client has none yet. The id is always echoed back
// so the client can persist it.
func sessionID(c echo.Context) string {
	id := c.Request().Header.Get(sessionHeader)
	if id == "" {
		id = uuid.New().String()
	}
	c.Response().Header().Set(sessionHeader, id)
	return id
}

type addCartItemRequest struct {
	CardID string `json:"card_id" validate:"required"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartUseCase.Get(c.Request().Context(), sessionID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.cartUseCase.Add(c.Request().Context(), sessionID(c), req.CardID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.cartUseCase.UpdateItem(c.Request().Context(), sessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := h.cartUseCase.Remove(c.Request().Context(), sessionID(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}
