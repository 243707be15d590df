package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// GoodFilter filtros opcionales para listar bienes.
type GoodFilter struct {
	CategoryID string
	SellerID   string
	Limit      int
	Offset     int
}

// GoodRepository define el puerto de persistencia para Good (DIP).
// GetByID carga también las imágenes.
type GoodRepository interface {
	Create(ctx context.Context, good *entity.Good) error
	GetByID(ctx context.Context, id string) (*entity.Good, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, good *entity.Good) error
	List(ctx context.Context, filter GoodFilter) ([]*entity.Good, error)
	Delete(ctx context.Context, id string) error
}

// GoodImageRepository persistencia de imágenes de un bien.
type GoodImageRepository interface {
	Create(ctx context.Context, image *entity.GoodImage) error
	ListByGood(ctx context.Context, goodID string) ([]entity.GoodImage, error)
}
