package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// CheckoutHandler checkouts y sus transacciones de pago.
type CheckoutHandler struct {
	checkouts    *usecase.CheckoutUseCase
	transactions *usecase.TransactionUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(checkouts *usecase.CheckoutUseCase, transactions *usecase.TransactionUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkouts: checkouts, transactions: transactions}
}

// Create godoc
// @Summary      Crear checkout desde la cesta
// @Description  Las líneas se toman de la cesta, que queda vacía. status e is_paid no se aceptan.
// @Tags         checkouts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "recipientId, paymentMethodId, deliveryMethodId"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/checkouts [post]
func (h *CheckoutHandler) Create(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.checkouts.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar checkouts propios
// @Tags         checkouts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CheckoutResponse
// @Router       /api/checkouts [get]
func (h *CheckoutHandler) List(c *fiber.Ctx) error {
	out, err := h.checkouts.List(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener checkout
// @Tags         checkouts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del checkout"
// @Success      200  {object}  dto.CheckoutResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/checkouts/{id} [get]
func (h *CheckoutHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.checkouts.GetByID(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListTransactions godoc
// @Summary      Transacciones de un checkout
// @Tags         checkouts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del checkout"
// @Success      200  {array}  dto.TransactionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/checkouts/{id}/transactions [get]
func (h *CheckoutHandler) ListTransactions(c *fiber.Ctx) error {
	out, err := h.transactions.ListByCheckout(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
