package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/permission"
)

// RequirePermission consulta la política de colección con la operación derivada del método HTTP.
// Debe usarse DESPUÉS de OptionalAuth.
//
// Comportamiento:
//   - 401 Unauthorized → denegado y sin principal autenticado.
//   - 403 Forbidden    → denegado con principal autenticado.
func RequirePermission(policy permission.CollectionPolicy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if policy.HasPermission(p, permission.OperationFromMethod(c.Method())) {
			return c.Next()
		}
		if !p.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "se requieren credenciales",
			})
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "no tiene permiso para realizar esta acción",
		})
	}
}
