package entity

import "time"

// CartItem is a Card plus the quantity held in a cart. Quantity stays
// within [1, Card.Quantity]; the reconciler clamps on every mutation.
type CartItem struct {
	Card
	CartQuantity int `json:"cart_quantity" firestore:"cartQuantity"`
}

// Cart is one session's cart as persisted by the storage adapter.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Subtotal is sum(price * quantity). No taxes or discounts are modeled.
func Subtotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.CartQuantity)
	}
	return total
}

// CloneItems deep-copies a cart slice. Orders keep a snapshot that must
// be immune to later cart mutation.
func CloneItems(items []CartItem) []CartItem {
	cloned := make([]CartItem, len(items))
	copy(cloned, items)
	return cloned
}
