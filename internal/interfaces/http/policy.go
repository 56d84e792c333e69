package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
)

// Combinaciones de roles usadas en la tabla de políticas.
var (
	soloAdmin  = []string{entity.RolAdmin}
	soloCoord  = []string{entity.RolCoord}
	adminRH    = []string{entity.RolAdmin, entity.RolRH}
	todosRoles = []string{entity.RolAdmin, entity.RolRH, entity.RolCoord}
)

// Regla una entrada de la tabla de políticas: método + ruta + roles
// permitidos + handler. Roles nil significa ruta autenticada sin
// restricción de rol.
type Regla struct {
	Metodo  string
	Ruta    string
	Roles   []string
	Handler fiber.Handler
}

// registrar monta las reglas sobre el router dado, interponiendo
// RequireRole cuando la regla lo pide. Toda la autorización de la API se
// declara en la tabla que recibe; los handlers no vuelven a verificar
// roles de ruta.
func registrar(r fiber.Router, reglas []Regla) {
	for _, regla := range reglas {
		handlers := []fiber.Handler{regla.Handler}
		if regla.Roles != nil {
			handlers = []fiber.Handler{RequireRole(regla.Roles...), regla.Handler}
		}
		r.Add(regla.Metodo, regla.Ruta, handlers...)
	}
}
