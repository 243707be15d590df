package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/mapper"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// BasketHandler cesta del usuario autenticado.
type BasketHandler struct {
	uc *usecase.BasketUseCase
}

// NewBasketHandler construye el handler.
func NewBasketHandler(uc *usecase.BasketUseCase) *BasketHandler {
	return &BasketHandler{uc: uc}
}

// Add godoc
// @Summary      Agregar a la cesta
// @Description  Si el bien ya está en la cesta se suma la cantidad.
// @Tags         basket
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BasketItemRequest  true  "goodId, count"
// @Success      201   {object}  dto.BasketItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/basket [post]
func (h *BasketHandler) Add(c *fiber.Ctx) error {
	var in dto.BasketItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Ver la cesta
// @Tags         basket
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BasketItemResponse
// @Router       /api/basket [get]
func (h *BasketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetCount godoc
// @Summary      Cambiar cantidad
// @Tags         basket
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.BasketCountRequest  true  "count"
// @Success      200   {object}  dto.BasketItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/basket/{id} [patch]
func (h *BasketHandler) SetCount(c *fiber.Ctx) error {
	var in dto.BasketCountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Count == nil {
		return writeError(c, domain.NewValidationError("count", domain.ReasonRequired))
	}
	if *in.Count < 1 {
		return writeError(c, domain.NewValidationError("count", mapper.ReasonMinCount))
	}
	out, err := h.uc.SetCount(c.UserContext(), GetPrincipal(c), c.Params("id"), *in.Count)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar de la cesta
// @Tags         basket
// @Security     Bearer
// @Param        id   path  string  true  "ID de la línea"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/basket/{id} [delete]
func (h *BasketHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), GetPrincipal(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
