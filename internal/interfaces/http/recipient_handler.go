package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// RecipientHandler destinatarios del usuario autenticado.
type RecipientHandler struct {
	uc *usecase.RecipientUseCase
}

// NewRecipientHandler construye el handler.
func NewRecipientHandler(uc *usecase.RecipientUseCase) *RecipientHandler {
	return &RecipientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear destinatario
// @Tags         recipients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecipientRequest  true  "Datos de envío"
// @Success      201   {object}  dto.RecipientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/recipients [post]
func (h *RecipientHandler) Create(c *fiber.Ctx) error {
	var in dto.RecipientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar destinatarios propios
// @Tags         recipients
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RecipientResponse
// @Router       /api/recipients [get]
func (h *RecipientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener destinatario
// @Tags         recipients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.RecipientResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipients/{id} [get]
func (h *RecipientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar destinatario
// @Tags         recipients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.RecipientRequest  true  "Datos de envío"
// @Success      200   {object}  dto.RecipientResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/recipients/{id} [put]
func (h *RecipientHandler) Update(c *fiber.Ctx) error {
	var in dto.RecipientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar destinatario
// @Tags         recipients
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/recipients/{id} [delete]
func (h *RecipientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
