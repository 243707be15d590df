package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// RecipientRequest entrada de un destinatario. userId sale del token.
type RecipientRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	MiddleName string `json:"middle_name"`
	Address    string `json:"address" validate:"required"`
	ZipCode    string `json:"zip_code" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
}

// RecipientResponse salida de un destinatario.
type RecipientResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name"`
	Address    string `json:"address"`
	ZipCode    string `json:"zip_code"`
	Phone      string `json:"phone"`
}

// BasketItemRequest entrada de una línea de cesta.
type BasketItemRequest struct {
	GoodID string `json:"goodId" validate:"required"`
	Count  *int   `json:"count" validate:"required,min=1"`
}

// BasketItemResponse salida de una línea de cesta.
type BasketItemResponse struct {
	ID     string              `json:"id"`
	GoodID string              `json:"goodId"`
	Good   *GoodNestedResponse `json:"good"`
	Count  int                 `json:"count"`
}

// CheckoutItemResponse salida de una línea de checkout.
type CheckoutItemResponse struct {
	GoodID string `json:"goodId"`
	Count  int    `json:"count"`
}

// CheckoutRequest entrada de un checkout. status, user, created, is_paid
// e items son de solo lectura y no se aceptan.
type CheckoutRequest struct {
	RecipientID      string           `json:"recipientId" validate:"required"`
	PaymentMethodID  string           `json:"paymentMethodId" validate:"required"`
	DeliveryMethodID string           `json:"deliveryMethodId" validate:"required"`
	PaymentTotal     *decimal.Decimal `json:"payment_total"`
}

// CheckoutResponse salida de un checkout.
type CheckoutResponse struct {
	ID               string                 `json:"id"`
	User             string                 `json:"user"`
	RecipientID      string                 `json:"recipientId"`
	PaymentMethodID  string                 `json:"paymentMethodId"`
	DeliveryMethodID string                 `json:"deliveryMethodId"`
	PaymentTotal     decimal.Decimal        `json:"payment_total"`
	Created          time.Time              `json:"created"`
	Items            []CheckoutItemResponse `json:"items"`
	Status           string                 `json:"status"`
	IsPaid           bool                   `json:"is_paid"`
}

// TransactionRequest entrada de una transacción de pago.
type TransactionRequest struct {
	CheckoutID   string           `json:"checkoutId" validate:"required"`
	Amount       *decimal.Decimal `json:"amount" validate:"required"`
	Status       string           `json:"status"`
	ProviderData json.RawMessage  `json:"provider_data"`
}

// TransactionStatusRequest cambio de estado (liquidación por staff).
type TransactionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending succeeded canceled"`
}

// TransactionResponse salida de una transacción. payment_url se deriva de provider_data.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Created      time.Time       `json:"created"`
	Updated      time.Time       `json:"updated"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	CheckoutID   string          `json:"checkoutId"`
	ProviderData json.RawMessage `json:"provider_data"`
	PaymentURL   *string         `json:"payment_url"`
}

// BasketCountRequest cambio de cantidad de una línea de cesta.
type BasketCountRequest struct {
	Count *int `json:"count" validate:"required,min=1"`
}
