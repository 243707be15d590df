package entity

// PaymentMethod método de pago ofrecido en el checkout.
type PaymentMethod struct {
	ID          string
	Title       string
	Description string
	Logo        string
}

// DeliveryMethod método de entrega ofrecido en el checkout.
type DeliveryMethod struct {
	ID          string
	Title       string
	Description string
}
