package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RecipientRepository define el puerto de persistencia para Recipient (DIP).
type RecipientRepository interface {
	Create(ctx context.Context, recipient *entity.Recipient) error
	GetByID(ctx context.Context, id string) (*entity.Recipient, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, recipient *entity.Recipient) error
	// ListByUser con userID vacío lista todos (uso de staff).
	ListByUser(ctx context.Context, userID string) ([]*entity.Recipient, error)
	Delete(ctx context.Context, id string) error
}
