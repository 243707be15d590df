package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/permission"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// LocalPrincipal clave en c.Locals para el *permission.Principal de la petición.
const LocalPrincipal = "principal"

// OptionalAuth valida el Bearer Token si viene y carga el principal en c.Locals.
// Sin header la petición sigue como anónima; un token inválido es 401.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipal, &permission.Principal{
			UserID:  id.UserID,
			IsStaff: id.IsStaff,
			Role:    id.Role,
			Groups:  id.Groups,
		})
		return c.Next()
	}
}

// RequireAuth exige un principal autenticado (después de OptionalAuth).
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetPrincipal(c).IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal de la petición; nil es anónimo.
func GetPrincipal(c *fiber.Ctx) *permission.Principal {
	p, _ := c.Locals(LocalPrincipal).(*permission.Principal)
	return p
}

// GetUserID devuelve el UserID del principal o "" si es anónimo.
func GetUserID(c *fiber.Ctx) string {
	if p := GetPrincipal(c); p != nil {
		return p.UserID
	}
	return ""
}
