package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// MethodHandler métodos de pago y de entrega.
type MethodHandler struct {
	uc *usecase.MethodUseCase
}

// NewMethodHandler construye el handler.
func NewMethodHandler(uc *usecase.MethodUseCase) *MethodHandler {
	return &MethodHandler{uc: uc}
}

// CreatePayment godoc
// @Summary      Crear método de pago
// @Tags         payment-methods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentMethodRequest  true  "Datos"
// @Success      201   {object}  dto.PaymentMethodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payment-methods [post]
func (h *MethodHandler) CreatePayment(c *fiber.Ctx) error {
	var in dto.PaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreatePayment(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetPayment godoc
// @Summary      Obtener método de pago
// @Tags         payment-methods
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.PaymentMethodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment-methods/{id} [get]
func (h *MethodHandler) GetPayment(c *fiber.Ctx) error {
	out, err := h.uc.GetPayment(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListPayments godoc
// @Summary      Listar métodos de pago
// @Tags         payment-methods
// @Produce      json
// @Success      200  {array}  dto.PaymentMethodResponse
// @Router       /api/payment-methods [get]
func (h *MethodHandler) ListPayments(c *fiber.Ctx) error {
	out, err := h.uc.ListPayments(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdatePayment godoc
// @Summary      Actualizar método de pago
// @Tags         payment-methods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.PaymentMethodRequest  true  "Datos"
// @Success      200   {object}  dto.PaymentMethodResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payment-methods/{id} [put]
func (h *MethodHandler) UpdatePayment(c *fiber.Ctx) error {
	var in dto.PaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdatePayment(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeletePayment godoc
// @Summary      Eliminar método de pago
// @Tags         payment-methods
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment-methods/{id} [delete]
func (h *MethodHandler) DeletePayment(c *fiber.Ctx) error {
	if err := h.uc.DeletePayment(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateDelivery godoc
// @Summary      Crear método de entrega
// @Tags         delivery-methods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeliveryMethodRequest  true  "Datos"
// @Success      201   {object}  dto.DeliveryMethodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/delivery-methods [post]
func (h *MethodHandler) CreateDelivery(c *fiber.Ctx) error {
	var in dto.DeliveryMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateDelivery(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDelivery godoc
// @Summary      Obtener método de entrega
// @Tags         delivery-methods
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.DeliveryMethodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delivery-methods/{id} [get]
func (h *MethodHandler) GetDelivery(c *fiber.Ctx) error {
	out, err := h.uc.GetDelivery(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListDeliveries godoc
// @Summary      Listar métodos de entrega
// @Tags         delivery-methods
// @Produce      json
// @Success      200  {array}  dto.DeliveryMethodResponse
// @Router       /api/delivery-methods [get]
func (h *MethodHandler) ListDeliveries(c *fiber.Ctx) error {
	out, err := h.uc.ListDeliveries(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateDelivery godoc
// @Summary      Actualizar método de entrega
// @Tags         delivery-methods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.DeliveryMethodRequest  true  "Datos"
// @Success      200   {object}  dto.DeliveryMethodResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/delivery-methods/{id} [put]
func (h *MethodHandler) UpdateDelivery(c *fiber.Ctx) error {
	var in dto.DeliveryMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateDelivery(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteDelivery godoc
// @Summary      Eliminar método de entrega
// @Tags         delivery-methods
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delivery-methods/{id} [delete]
func (h *MethodHandler) DeleteDelivery(c *fiber.Ctx) error {
	if err := h.uc.DeleteDelivery(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
