package dto

// PaymentMethodRequest entrada de un método de pago.
type PaymentMethodRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// PaymentMethodResponse salida de un método de pago.
type PaymentMethodResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// DeliveryMethodRequest entrada de un método de entrega.
type DeliveryMethodRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// DeliveryMethodResponse salida de un método de entrega.
type DeliveryMethodResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
