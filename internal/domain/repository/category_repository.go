package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para GoodCategory (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.GoodCategory) error
	GetByID(ctx context.Context, id string) (*entity.GoodCategory, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, category *entity.GoodCategory) error
	List(ctx context.Context, limit, offset int) ([]*entity.GoodCategory, error)
	Delete(ctx context.Context, id string) error
}
