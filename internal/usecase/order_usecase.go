package usecase

import (
	"context"
	"strings"

	"cardplanet/internal/domain/entity"
	"cardplanet/internal/domain/repository"
	"cardplanet/internal/infrastructure/websocket"
	"cardplanet/pkg/errors"
	"cardplanet/pkg/logger"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	hub       *websocket.Hub
}

func NewOrderUseCase(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, hub *websocket.Hub) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		hub:       hub,
	}
}

// Checkout turns the session cart into an order. The order keeps a deep
// copy of the cart taken here; later cart mutations cannot touch it.
func (uc *OrderUseCase) Checkout(ctx context.Context, sessionID, username string) (*entity.Order, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.BadRequest("Username is required", nil)
	}

	items, err := uc.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	order := &entity.Order{
		OrderID:    entity.NewOrderID(),
		Username:   username,
		Items:      entity.CloneItems(items),
		TotalPrice: entity.Subtotal(items),
		Status:     entity.OrderStatusPending,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		// The cart stays intact so the user can retry.
		return nil, err
	}

	if err := uc.cartRepo.Clear(ctx, sessionID); err != nil {
		logger.Warn("Order %s created but cart %s not cleared: %v", order.OrderID, sessionID, err)
	}

	if uc.hub != nil {
		uc.hub.Broadcast(websocket.Event{
			Type: "order.created",
			Data: map[string]interface{}{
				"order_id":    order.OrderID,
				"username":    order.Username,
				"total_price": order.TotalPrice,
			},
		})
	}

	return order, nil
}

func (uc *OrderUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.List(ctx, limit, offset)
}

func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, errors.BadRequest("Invalid order status", nil)
	}

	order, err := uc.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if uc.hub != nil {
		uc.hub.Broadcast(websocket.Event{
			Type: "order.status",
			Data: map[string]interface{}{
				"order_id": order.OrderID,
				"status":   order.Status,
			},
		})
	}

	return order, nil
}
