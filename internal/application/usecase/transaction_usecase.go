package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/mapper"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/permission"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TransactionUseCase transacciones de pago de un checkout.
// El acceso se decide sobre el checkout dueño de la transacción.
type TransactionUseCase struct {
	repo      repository.TransactionRepository
	checkouts repository.CheckoutRepository
	tx        TxRunner
	mapper    mapper.TransactionMapper
	policy    permission.ObjectPolicy
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository, checkouts repository.CheckoutRepository, tx TxRunner) *TransactionUseCase {
	return &TransactionUseCase{
		repo:      repo,
		checkouts: checkouts,
		tx:        tx,
		mapper:    mapper.TransactionMapper{Checkouts: checkouts},
		policy:    permission.OwnerOrAdmin{},
	}
}

// Create registra un intento de pago. Solo el staff puede crearla en un estado distinto de pending.
func (uc *TransactionUseCase) Create(ctx context.Context, p *permission.Principal, in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	t, err := uc.mapper.FromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.checkout(ctx, p, permission.OpWrite, t.CheckoutID); err != nil {
		return nil, err
	}
	if t.Status == "" {
		t.Status = entity.TransactionStatusPending
	}
	if t.Status != entity.TransactionStatusPending && !p.Staff() {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	t.ID = uuid.New().String()
	t.Created = now
	t.Updated = now
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	out := uc.mapper.ToResponse(t)
	return &out, nil
}

// GetByID obtiene una transacción con su payment_url derivado.
func (uc *TransactionUseCase) GetByID(ctx context.Context, p *permission.Principal, id string) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.checkout(ctx, p, permission.OpRead, t.CheckoutID); err != nil {
		return nil, err
	}
	out := uc.mapper.ToResponse(t)
	return &out, nil
}

// ListByCheckout lista las transacciones de un checkout.
func (uc *TransactionUseCase) ListByCheckout(ctx context.Context, p *permission.Principal, checkoutID string) ([]dto.TransactionResponse, error) {
	if _, err := uc.checkout(ctx, p, permission.OpRead, checkoutID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByCheckout(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, uc.mapper.ToResponse(t))
	}
	return items, nil
}

// ReasonSettled motivo cuando se intenta sacar una transacción de succeeded.
const ReasonSettled = "Transaction has already succeeded."

// SetStatus liquida la transacción. succeeded marca el checkout como pagado en la misma transacción de BD
// y es final: una transacción succeeded ya no cambia de estado.
func (uc *TransactionUseCase) SetStatus(ctx context.Context, id string, in dto.TransactionStatusRequest) (*dto.TransactionResponse, error) {
	switch in.Status {
	case entity.TransactionStatusPending, entity.TransactionStatusSucceeded, entity.TransactionStatusCanceled:
	case "":
		return nil, domain.NewValidationError("status", domain.ReasonRequired)
	default:
		return nil, domain.NewValidationError("status", "\""+in.Status+"\" is not a valid choice.")
	}

	var settled *entity.Transaction
	err := uc.tx.RunSettlement(ctx, func(transactions repository.TransactionRepository, checkouts repository.CheckoutRepository) error {
		t, err := transactions.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if t.Status == entity.TransactionStatusSucceeded && in.Status != entity.TransactionStatusSucceeded {
			return domain.NewValidationError("status", ReasonSettled)
		}
		if err := transactions.UpdateStatus(ctx, id, in.Status); err != nil {
			return err
		}
		if in.Status == entity.TransactionStatusSucceeded {
			if err := checkouts.UpdateStatus(ctx, t.CheckoutID, entity.CheckoutStatusPaid, true); err != nil {
				return err
			}
		}
		t.Status = in.Status
		t.Updated = time.Now()
		settled = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := uc.mapper.ToResponse(settled)
	return &out, nil
}

func (uc *TransactionUseCase) checkout(ctx context.Context, p *permission.Principal, op permission.Operation, id string) (*entity.Checkout, error) {
	c, err := uc.checkouts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := authorizeObject(uc.policy, p, op, c); err != nil {
		return nil, err
	}
	return c, nil
}
