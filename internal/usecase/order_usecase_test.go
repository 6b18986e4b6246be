package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardplanet/internal/domain/entity"
	"cardplanet/pkg/errors"
)

type fakeCartRepo struct {
	carts map[string][]entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string][]entity.CartItem)}
}

func (r *fakeCartRepo) Save(_ context.Context, sessionID string, items []entity.CartItem) error {
	r.carts[sessionID] = items
	return nil
}

func (r *fakeCartRepo) Load(_ context.Context, sessionID string) ([]entity.CartItem, error) {
	return r.carts[sessionID], nil
}

func (r *fakeCartRepo) Clear(_ context.Context, sessionID string) error {
	delete(r.carts, sessionID)
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	order.ID = entity.NewOrderID()
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *fakeOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	return r.orders, int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	order, err := r.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func TestCheckoutRequiresUsername(t *testing.T) {
	uc := NewOrderUseCase(&fakeOrderRepo{}, newFakeCartRepo(), nil)

	_, err := uc.Checkout(context.Background(), "sess-1", "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCheckoutRequiresNonEmptyCart(t *testing.T) {
	uc := NewOrderUseCase(&fakeOrderRepo{}, newFakeCartRepo(), nil)

	_, err := uc.Checkout(context.Background(), "sess-1", "ash")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCheckoutCreatesPendingOrderAndClearsCart(t *testing.T) {
	cartRepo := newFakeCartRepo()
	orderRepo := &fakeOrderRepo{}
	uc := NewOrderUseCase(orderRepo, cartRepo, nil)
	ctx := context.Background()

	cartRepo.carts["sess-1"] = []entity.CartItem{
		{Card: entity.Card{ID: "42", Price: 2}, CartQuantity: 3},
		{Card: entity.Card{ID: "7", Price: 10}, CartQuantity: 1},
	}

	order, err := uc.Checkout(ctx, "sess-1", "  ash  ")
	require.NoError(t, err)

	assert.Equal(t, "ash", order.Username)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderID, "ORD-"))
	assert.InDelta(t, 16.0, order.TotalPrice, 1e-9)
	require.Len(t, order.Items, 2)

	items, err := cartRepo.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	require.Len(t, orderRepo.orders, 1)
}

func TestCheckoutSnapshotIsIsolatedFromCart(t *testing.T) {
	cartRepo := newFakeCartRepo()
	uc := NewOrderUseCase(&fakeOrderRepo{}, cartRepo, nil)
	ctx := context.Background()

	cart := []entity.CartItem{{Card: entity.Card{ID: "42", Price: 2}, CartQuantity: 1}}
	cartRepo.carts["sess-1"] = cart

	order, err := uc.Checkout(ctx, "sess-1", "ash")
	require.NoError(t, err)

	cart[0].CartQuantity = 99
	assert.Equal(t, 1, order.Items[0].CartQuantity)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc := NewOrderUseCase(&fakeOrderRepo{}, newFakeCartRepo(), nil)

	_, err := uc.UpdateStatus(context.Background(), "abc", entity.OrderStatus("shipped"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateStatusTransitions(t *testing.T) {
	cartRepo := newFakeCartRepo()
	orderRepo := &fakeOrderRepo{}
	uc := NewOrderUseCase(orderRepo, cartRepo, nil)
	ctx := context.Background()

	cartRepo.carts["sess-1"] = []entity.CartItem{{Card: entity.Card{ID: "42", Price: 2}, CartQuantity: 1}}
	order, err := uc.Checkout(ctx, "sess-1", "ash")
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(ctx, order.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)
}
