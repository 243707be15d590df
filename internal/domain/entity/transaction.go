package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Transaction.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusSucceeded = "succeeded"
	TransactionStatusCanceled  = "canceled"
)

// Transaction intento de pago de un checkout ante el proveedor.
// ProviderData es opaco: se guarda tal cual lo entrega el proveedor.
type Transaction struct {
	ID           string
	CheckoutID   string
	Created      time.Time
	Updated      time.Time
	Status       string
	Amount       decimal.Decimal
	ProviderData json.RawMessage
}
