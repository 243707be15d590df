package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/mapper"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/permission"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ReasonEmptyBasket motivo cuando se intenta un checkout sin líneas en la cesta.
const ReasonEmptyBasket = "Basket is empty."

// CheckoutUseCase convierte la cesta en un checkout.
// Los items se crean en el servidor; status e is_paid solo los cambia la liquidación.
type CheckoutUseCase struct {
	repo       repository.CheckoutRepository
	recipients repository.RecipientRepository
	tx         TxRunner
	mapper     mapper.CheckoutMapper
	policy     permission.ObjectPolicy
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	repo repository.CheckoutRepository,
	recipients repository.RecipientRepository,
	payments repository.PaymentMethodRepository,
	deliveries repository.DeliveryMethodRepository,
	tx TxRunner,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		repo:       repo,
		recipients: recipients,
		tx:         tx,
		mapper: mapper.CheckoutMapper{
			Recipients:      recipients,
			PaymentMethods:  payments,
			DeliveryMethods: deliveries,
		},
		policy: permission.OwnerOrAdmin{},
	}
}

// Create crea el checkout con las líneas de la cesta del principal y las quita de la cesta.
// Si payment_total no viene se calcula como suma de precio por cantidad.
func (uc *CheckoutUseCase) Create(ctx context.Context, p *permission.Principal, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	checkout, err := uc.mapper.FromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	recipient, err := uc.recipients.GetByID(ctx, checkout.RecipientID)
	if err != nil {
		return nil, err
	}
	// un destinatario ajeno se reporta igual que uno inexistente
	if recipient == nil || !uc.policy.HasObjectPermission(p, permission.OpRead, recipient) {
		return nil, domain.NewValidationError("recipientId", domain.ReasonDoesNotExist(checkout.RecipientID))
	}

	checkout.ID = uuid.New().String()
	checkout.UserID = p.UserID
	checkout.Created = time.Now()
	checkout.Status = entity.CheckoutStatusNew
	checkout.IsPaid = false

	// las líneas se leen y bloquean dentro de la tx; solo se borran las copiadas al checkout
	err = uc.tx.RunCheckout(ctx, func(checkouts repository.CheckoutRepository, basket repository.BasketRepository) error {
		lines, err := basket.ListByUserForUpdate(ctx, p.UserID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.NewValidationError("items", ReasonEmptyBasket)
		}
		total := decimal.Zero
		for i, line := range lines {
			checkout.Items = append(checkout.Items, entity.CheckoutItem{
				ID:         uuid.New().String(),
				CheckoutID: checkout.ID,
				GoodID:     line.GoodID,
				Count:      line.Count,
				Position:   i,
			})
			if line.Good != nil {
				total = total.Add(line.Good.Price.Mul(decimal.NewFromInt(int64(line.Count))))
			}
		}
		if in.PaymentTotal == nil {
			checkout.PaymentTotal = total
		}

		if err := checkouts.Create(ctx, checkout); err != nil {
			return err
		}
		for i := range checkout.Items {
			if err := checkouts.CreateItem(ctx, &checkout.Items[i]); err != nil {
				return err
			}
		}
		for _, line := range lines {
			if err := basket.Delete(ctx, line.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := uc.mapper.ToResponse(checkout)
	return &out, nil
}

// List devuelve los checkouts propios (todos para staff).
func (uc *CheckoutUseCase) List(ctx context.Context, p *permission.Principal) ([]dto.CheckoutResponse, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByUser(ctx, ownerFilter(p))
	if err != nil {
		return nil, err
	}
	items := make([]dto.CheckoutResponse, 0, len(list))
	for _, c := range list {
		items = append(items, uc.mapper.ToResponse(c))
	}
	return items, nil
}

// GetByID obtiene un checkout con sus items (dueño o staff).
func (uc *CheckoutUseCase) GetByID(ctx context.Context, p *permission.Principal, id string) (*dto.CheckoutResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := authorizeObject(uc.policy, p, permission.OpRead, c); err != nil {
		return nil, err
	}
	out := uc.mapper.ToResponse(c)
	return &out, nil
}
