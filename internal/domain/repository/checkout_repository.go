package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CheckoutRepository persistencia de checkouts. GetByID carga los items.
type CheckoutRepository interface {
	Create(ctx context.Context, checkout *entity.Checkout) error
	CreateItem(ctx context.Context, item *entity.CheckoutItem) error
	GetByID(ctx context.Context, id string) (*entity.Checkout, error)
	Exists(ctx context.Context, id string) (bool, error)
	// ListByUser con userID vacío lista todos (uso de staff).
	ListByUser(ctx context.Context, userID string) ([]*entity.Checkout, error)
	UpdateStatus(ctx context.Context, id, status string, isPaid bool) error
}
