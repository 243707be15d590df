package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// TransactionRepository persistencia de transacciones de pago.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la tx.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Transaction, error)
	ListByCheckout(ctx context.Context, checkoutID string) ([]*entity.Transaction, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
