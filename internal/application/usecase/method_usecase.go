package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/mapper"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// MethodUseCase CRUD de métodos de pago y de entrega.
type MethodUseCase struct {
	payments   repository.PaymentMethodRepository
	deliveries repository.DeliveryMethodRepository
}

// NewMethodUseCase construye el caso de uso.
func NewMethodUseCase(payments repository.PaymentMethodRepository, deliveries repository.DeliveryMethodRepository) *MethodUseCase {
	return &MethodUseCase{payments: payments, deliveries: deliveries}
}

func (uc *MethodUseCase) CreatePayment(ctx context.Context, in dto.PaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	m, err := mapper.PaymentMethodFromRequest(in)
	if err != nil {
		return nil, err
	}
	m.ID = uuid.New().String()
	if err := uc.payments.Create(ctx, m); err != nil {
		return nil, err
	}
	out := mapper.PaymentMethodToResponse(m)
	return &out, nil
}

func (uc *MethodUseCase) GetPayment(ctx context.Context, id string) (*dto.PaymentMethodResponse, error) {
	m, err := uc.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	out := mapper.PaymentMethodToResponse(m)
	return &out, nil
}

func (uc *MethodUseCase) ListPayments(ctx context.Context) ([]dto.PaymentMethodResponse, error) {
	list, err := uc.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		items = append(items, mapper.PaymentMethodToResponse(m))
	}
	return items, nil
}

func (uc *MethodUseCase) UpdatePayment(ctx context.Context, id string, in dto.PaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	ok, err := uc.payments.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	m, err := mapper.PaymentMethodFromRequest(in)
	if err != nil {
		return nil, err
	}
	m.ID = id
	if err := uc.payments.Update(ctx, m); err != nil {
		return nil, err
	}
	out := mapper.PaymentMethodToResponse(m)
	return &out, nil
}

func (uc *MethodUseCase) DeletePayment(ctx context.Context, id string) error {
	ok, err := uc.payments.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return uc.payments.Delete(ctx, id)
}

func (uc *MethodUseCase) CreateDelivery(ctx context.Context, in dto.DeliveryMethodRequest) (*dto.DeliveryMethodResponse, error) {
	m, err := mapper.DeliveryMethodFromRequest(in)
	if err != nil {
		return nil, err
	}
	m.ID = uuid.New().String()
	if err := uc.deliveries.Create(ctx, m); err != nil {
		return nil, err
	}
	out := mapper.DeliveryMethodToResponse(m)
	return &out, nil
}

func (uc *MethodUseCase) GetDelivery(ctx context.Context, id string) (*dto.DeliveryMethodResponse, error) {
	m, err := uc.deliveries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	out := mapper.DeliveryMethodToResponse(m)
	return &out, nil
}

func (uc *MethodUseCase) ListDeliveries(ctx context.Context) ([]dto.DeliveryMethodResponse, error) {
	list, err := uc.deliveries.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryMethodResponse, 0, len(list))
	for _, m := range list {
		items = append(items, mapper.DeliveryMethodToResponse(m))
	}
	return items, nil
}

func (uc *MethodUseCase) UpdateDelivery(ctx context.Context, id string, in dto.DeliveryMethodRequest) (*dto.DeliveryMethodResponse, error) {
	ok, err := uc.deliveries.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	m, err := mapper.DeliveryMethodFromRequest(in)
	if err != nil {
		return nil, err
	}
	m.ID = id
	if err := uc.deliveries.Update(ctx, m); err != nil {
		return nil, err
	}
	out := mapper.DeliveryMethodToResponse(m)
	return &out, nil
}

func (uc *MethodUseCase) DeleteDelivery(ctx context.Context, id string) error {
	ok, err := uc.deliveries.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return uc.deliveries.Delete(ctx, id)
}
