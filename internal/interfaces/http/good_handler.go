package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// GoodHandler catálogo de bienes.
type GoodHandler struct {
	uc *usecase.GoodUseCase
}

// NewGoodHandler construye el handler.
func NewGoodHandler(uc *usecase.GoodUseCase) *GoodHandler {
	return &GoodHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar bien
// @Description  sellerId se toma del token; uploaded_images crea una imagen por elemento.
// @Tags         goods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GoodRequest  true  "Datos del bien"
// @Success      201   {object}  dto.GoodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/goods [post]
func (h *GoodHandler) Create(c *fiber.Ctx) error {
	var in dto.GoodRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener bien
// @Tags         goods
// @Produce      json
// @Param        id   path  string  true  "ID del bien"
// @Success      200  {object}  dto.GoodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/goods/{id} [get]
func (h *GoodHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar bienes
// @Tags         goods
// @Produce      json
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {object}  dto.GoodListResponse
// @Router       /api/goods [get]
func (h *GoodHandler) List(c *fiber.Ctx) error {
	p := page(c)
	out, err := h.uc.List(c.UserContext(), repository.GoodFilter{
		CategoryID: c.Query("categoryId"),
		Limit:      p.Limit,
		Offset:     p.Offset,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Bienes del vendedor autenticado
// @Tags         goods
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.GoodListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/seller/goods [get]
func (h *GoodHandler) ListMine(c *fiber.Ctx) error {
	p := page(c)
	out, err := h.uc.ListMine(c.UserContext(), GetPrincipal(c), p.Limit, p.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar bien
// @Description  Solo el vendedor dueño o staff.
// @Tags         goods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del bien"
// @Param        body  body  dto.GoodRequest  true  "Datos del bien"
// @Success      200   {object}  dto.GoodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/goods/{id} [put]
func (h *GoodHandler) Update(c *fiber.Ctx) error {
	var in dto.GoodRequest
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
// @Summary      Eliminar bien
// @Tags         goods
// @Security     Bearer
// @Param        id   path  string  true  "ID del bien"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/goods/{id} [delete]
func (h *GoodHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
