package mapper

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CheckoutMapper mapea Checkout. Los tres ids son escribibles; status, user,
// created, is_paid e items son de solo lectura.
type CheckoutMapper struct {
	Recipients      Resolver
	PaymentMethods  Resolver
	DeliveryMethods Resolver
}

// CheckoutItemToResponse goodId de solo lectura más count.
func CheckoutItemToResponse(item entity.CheckoutItem) dto.CheckoutItemResponse {
	return dto.CheckoutItemResponse{GoodID: item.GoodID, Count: item.Count}
}

func (m CheckoutMapper) ToResponse(c *entity.Checkout) dto.CheckoutResponse {
	items := make([]dto.CheckoutItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CheckoutItemToResponse(it))
	}
	return dto.CheckoutResponse{
		ID:               c.ID,
		User:             c.UserID,
		RecipientID:      c.RecipientID,
		PaymentMethodID:  c.PaymentMethodID,
		DeliveryMethodID: c.DeliveryMethodID,
		PaymentTotal:     c.PaymentTotal,
		Created:          c.Created,
		Items:            items,
		Status:           c.Status,
		IsPaid:           c.IsPaid,
	}
}

// FromRequest resuelve las tres referencias. payment_total es opcional.
func (m CheckoutMapper) FromRequest(ctx context.Context, in dto.CheckoutRequest) (*entity.Checkout, error) {
	verr := &domain.ValidationError{}
	if err := resolveRef(ctx, m.Recipients, "recipientId", in.RecipientID, verr); err != nil {
		return nil, err
	}
	if err := resolveRef(ctx, m.PaymentMethods, "paymentMethodId", in.PaymentMethodID, verr); err != nil {
		return nil, err
	}
	if err := resolveRef(ctx, m.DeliveryMethods, "deliveryMethodId", in.DeliveryMethodID, verr); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	c := &entity.Checkout{
		RecipientID:      in.RecipientID,
		PaymentMethodID:  in.PaymentMethodID,
		DeliveryMethodID: in.DeliveryMethodID,
	}
	if in.PaymentTotal != nil {
		c.PaymentTotal = *in.PaymentTotal
	}
	return c, nil
}
