package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Checkout. Los cambia la liquidación del pago, nunca el cliente.
const (
	CheckoutStatusNew       = "new"
	CheckoutStatusPaid      = "paid"
	CheckoutStatusCancelled = "cancelled"
)

// Checkout pedido confirmado a partir de la cesta.
type Checkout struct {
	ID               string
	UserID           string
	RecipientID      string
	PaymentMethodID  string
	DeliveryMethodID string
	PaymentTotal     decimal.Decimal
	Created          time.Time
	Status           string
	IsPaid           bool
	Items            []CheckoutItem
}

// GetUserID expone el dueño para las políticas de permisos.
func (c *Checkout) GetUserID() string { return c.UserID }

// CheckoutItem línea de un checkout, creada en el servidor desde la cesta.
type CheckoutItem struct {
	ID         string
	CheckoutID string
	GoodID     string
	Count      int
	Position   int // orden de la línea en la cesta
}
