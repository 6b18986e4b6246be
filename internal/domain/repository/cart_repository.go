package repository

import (
	"context"

	"cardplanet/internal/domain/entity"
)

type CartRepository interface {
	Save(ctx context.Context, sessionID string, items []entity.CartItem) error
	Load(ctx context.Context, sessionID string) ([]entity.CartItem, error)
	Clear(ctx context.Context, sessionID string) error
}
