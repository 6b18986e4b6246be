package entity

import (
	"fmt"
	"math/rand"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a submitted checkout. Items is a deep copy of the cart taken
// at submission time.
type Order struct {
	ID         string      `json:"id" firestore:"id"`
	OrderID    string      `json:"order_id" firestore:"orderId"`
	Username   string      `json:"username" firestore:"username"`
	Items      []CartItem  `json:"items" firestore:"items"`
	TotalPrice float64     `json:"total_price" firestore:"totalPrice"`
	Status     OrderStatus `json:"status" firestore:"status"`
	CreatedAt  time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time   `json:"updated_at" firestore:"updatedAt"`
}

// NewOrderID generates the human-readable order reference shown to the
// customer, e.g. ORD-38412345-217.
func NewOrderID() string {
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}
	return fmt.Sprintf("ORD-%s-%d", ts, rand.Intn(1000))
}
