package usecase

import (
	"context"

	"cardplanet/internal/domain/entity"
	"cardplanet/internal/domain/repository"
	"cardplanet/internal/infrastructure/websocket"
	"cardplanet/pkg/errors"
)

// AddToCart merges one copy of card into the cart. The input slice is
// never mutated. The returned flag reports that the stock ceiling
// clamped the quantity; that is a notification for the caller, not an
// error.
func AddToCart(cart []entity.CartItem, card entity.Card) ([]entity.CartItem, bool) {
	newCart := entity.CloneItems(cart)
	ceiling := stockCeiling(card)

	for i, item := range newCart {
		if item.ID == card.ID {
			quantity := item.CartQuantity + 1
			clamped := quantity > ceiling
			if clamped {
				quantity = ceiling
			}
			newCart[i].CartQuantity = quantity
			return newCart, clamped
		}
	}

	return append(newCart, entity.CartItem{Card: card, CartQuantity: 1}), false
}

// RemoveFromCart drops the item with the given id; absent ids are a
// no-op, not an error.
func RemoveFromCart(cart []entity.CartItem, id string) []entity.CartItem {
	newCart := make([]entity.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.ID != id {
			newCart = append(newCart, item)
		}
	}
	return newCart
}

// UpdateQuantity sets an item's quantity, clamped to [1, stock]. The
// stock ceiling applies here exactly as on add. Unknown ids are a no-op.
func UpdateQuantity(cart []entity.CartItem, id string, quantity int) ([]entity.CartItem, bool) {
	newCart := entity.CloneItems(cart)
	clamped := false

	for i, item := range newCart {
		if item.ID == id {
			ceiling := stockCeiling(item.Card)
			if quantity > ceiling {
				quantity = ceiling
				clamped = true
			}
			if quantity < 1 {
				quantity = 1
			}
			newCart[i].CartQuantity = quantity
			break
		}
	}

	return newCart, clamped
}

func stockCeiling(card entity.Card) int {
	if card.Quantity < 1 {
		return 1
	}
	return card.Quantity
}

// CartUseCase owns the authoritative cart for each session; the
// repository is its durable mirror, written before any mutation returns.
type CartUseCase struct {
	cartRepo repository.CartRepository
	catalog  *CatalogUseCase
	hub      *websocket.Hub
}

func NewCartUseCase(cartRepo repository.CartRepository, catalog *CatalogUseCase, hub *websocket.Hub) *CartUseCase {
	return &CartUseCase{
		cartRepo: cartRepo,
		catalog:  catalog,
		hub:      hub,
	}
}

type CartView struct {
	Items    []entity.CartItem `json:"items"`
	Subtotal float64           `json:"subtotal"`
}

func (uc *CartUseCase) Get(ctx context.Context, sessionID string) (*CartView, error) {
	items, err := uc.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &CartView{Items: items, Subtotal: entity.Subtotal(items)}, nil
}

// Add puts one copy of the card into the session cart. When the stock
// ceiling clamps the quantity, a cart.max_stock event is pushed to the
// session as a side channel; the call still succeeds.
func (uc *CartUseCase) Add(ctx context.Context, sessionID, cardID string) (*CartView, error) {
	card, err := uc.catalog.CardByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	items, err := uc.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	newItems, clamped := AddToCart(items, *card)
	if err := uc.cartRepo.Save(ctx, sessionID, newItems); err != nil {
		return nil, err
	}

	if clamped {
		uc.notifyMaxStock(sessionID, *card)
	}

	return &CartView{Items: newItems, Subtotal: entity.Subtotal(newItems)}, nil
}

func (uc *CartUseCase) UpdateItem(ctx context.Context, sessionID, cardID string, quantity int) (*CartView, error) {
	items, err := uc.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, item := range items {
		if item.ID == cardID {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NotFound("Cart item", nil)
	}

	newItems, clamped := UpdateQuantity(items, cardID, quantity)
	if err := uc.cartRepo.Save(ctx, sessionID, newItems); err != nil {
		return nil, err
	}

	if clamped {
		for _, item := range newItems {
			if item.ID == cardID {
				uc.notifyMaxStock(sessionID, item.Card)
				break
			}
		}
	}

	return &CartView{Items: newItems, Subtotal: entity.Subtotal(newItems)}, nil
}

func (uc *CartUseCase) Remove(ctx context.Context, sessionID, cardID string) (*CartView, error) {
	items, err := uc.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	newItems := RemoveFromCart(items, cardID)
	if err := uc.cartRepo.Save(ctx, sessionID, newItems); err != nil {
		return nil, err
	}

	return &CartView{Items: newItems, Subtotal: entity.Subtotal(newItems)}, nil
}

func (uc *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	return uc.cartRepo.Clear(ctx, sessionID)
}

func (uc *CartUseCase) notifyMaxStock(sessionID string, card entity.Card) {
	if uc.hub == nil {
		return
	}
	uc.hub.SendToSession(sessionID, websocket.Event{
		Type: "cart.max_stock",
		Data: map[string]interface{}{
			"card_id": card.ID,
			"name":    card.DisplayName(),
			"stock":   card.Quantity,
		},
	})
}
