package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// BasketRepository persistencia de la cesta. Las lecturas cargan BasketItem.Good.
type BasketRepository interface {
	Create(ctx context.Context, item *entity.BasketItem) error
	GetByID(ctx context.Context, id string) (*entity.BasketItem, error)
	GetByUserAndGood(ctx context.Context, userID, goodID string) (*entity.BasketItem, error)
	UpdateCount(ctx context.Context, id string, count int) error
	ListByUser(ctx context.Context, userID string) ([]*entity.BasketItem, error)
	Delete(ctx context.Context, id string) error
	// ListByUserForUpdate como ListByUser pero bloquea las líneas hasta el fin de la tx.
	ListByUserForUpdate(ctx context.Context, userID string) ([]*entity.BasketItem, error)
}
