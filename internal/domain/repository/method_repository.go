package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// PaymentMethodRepository define el puerto de persistencia para PaymentMethod (DIP).
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *entity.PaymentMethod) error
	GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, method *entity.PaymentMethod) error
	List(ctx context.Context) ([]*entity.PaymentMethod, error)
	Delete(ctx context.Context, id string) error
}

// DeliveryMethodRepository define el puerto de persistencia para DeliveryMethod (DIP).
type DeliveryMethodRepository interface {
	Create(ctx context.Context, method *entity.DeliveryMethod) error
	GetByID(ctx context.Context, id string) (*entity.DeliveryMethod, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, method *entity.DeliveryMethod) error
	List(ctx context.Context) ([]*entity.DeliveryMethod, error)
	Delete(ctx context.Context, id string) error
}
