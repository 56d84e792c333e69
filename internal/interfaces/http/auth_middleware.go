package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalCorreo = "correo"
	LocalRoles  = "roles"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, correo y roles
// a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalCorreo, claims.Correo)
		c.Locals(LocalRoles, claims.Roles)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que autoriza solo a usuarios con
// alguno de los roles dados. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 MISSING_ROLE → el token no trae claim de roles (tokens legacy).
//   - 403 FORBIDDEN    → ninguno de los roles del token está permitido.
func RequireRole(allowed ...string) fiber.Handler {
	permitidos := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		permitidos[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		roles := GetRoles(c)
		if sinRoles(roles) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye roles"})
		}
		for _, r := range roles {
			if _, ok := permitidos[r]; ok {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

func sinRoles(roles []string) bool {
	for _, r := range roles {
		if r != "" {
			return false
		}
	}
	return true
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCorreo devuelve el correo del contexto (después del middleware de auth).
func GetCorreo(c *fiber.Ctx) string {
	v := c.Locals(LocalCorreo)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRoles devuelve los roles del contexto (después del middleware de auth).
func GetRoles(c *fiber.Ctx) []string {
	v := c.Locals(LocalRoles)
	if v == nil {
		return nil
	}
	roles, _ := v.([]string)
	return roles
}

// GetRole devuelve el primer rol del contexto, o cadena vacía.
func GetRole(c *fiber.Ctx) string {
	roles := GetRoles(c)
	if len(roles) == 0 {
		return ""
	}
	return roles[0]
}
