package mapper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// TransactionMapper mapea Transaction; checkoutId se resuelve contra los checkouts.
type TransactionMapper struct {
	Checkouts Resolver
}

// ToResponse devuelve provider_data tal cual y payment_url derivado (null si no hay).
func (m TransactionMapper) ToResponse(t *entity.Transaction) dto.TransactionResponse {
	out := dto.TransactionResponse{
		ID:           t.ID,
		Created:      t.Created,
		Updated:      t.Updated,
		Status:       t.Status,
		Amount:       t.Amount,
		CheckoutID:   t.CheckoutID,
		ProviderData: t.ProviderData,
	}
	if u, ok := PaymentURL(t.ProviderData); ok {
		out.PaymentURL = &u
	}
	return out
}

// FromRequest valida checkoutId y amount. status queda vacío si no viene.
func (m TransactionMapper) FromRequest(ctx context.Context, in dto.TransactionRequest) (*entity.Transaction, error) {
	verr := &domain.ValidationError{}
	if err := resolveRef(ctx, m.Checkouts, "checkoutId", in.CheckoutID, verr); err != nil {
		return nil, err
	}
	if in.Amount == nil {
		verr.Add("amount", domain.ReasonRequired)
	}
	switch in.Status {
	case "", entity.TransactionStatusPending, entity.TransactionStatusSucceeded, entity.TransactionStatusCanceled:
	default:
		verr.Add("status", fmt.Sprintf("%q is not a valid choice.", in.Status))
	}
	if len(in.ProviderData) > 0 && !json.Valid(in.ProviderData) {
		verr.Add("provider_data", "Value must be valid JSON.")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	t := &entity.Transaction{
		CheckoutID: in.CheckoutID,
		Amount:     *in.Amount,
		Status:     in.Status,
	}
	if len(in.ProviderData) > 0 && string(in.ProviderData) != "null" {
		t.ProviderData = append(json.RawMessage(nil), in.ProviderData...)
	}
	return t, nil
}
