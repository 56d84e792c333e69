package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin = "ADMIN"
	RolRH    = "RH"
	RolCoord = "COORD"
)

// Usuario representa un usuario del sistema. Los roles viven en la tabla
// usuario_roles (muchos a muchos) y se cargan junto con el usuario.
type Usuario struct {
	ID           string
	Nombre       string
	Correo       string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Roles        []string
	Activo       bool // false = baja lógica (soft delete)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TieneRol indica si el usuario tiene el rol dado.
func (u *Usuario) TieneRol(rol string) bool {
	for _, r := range u.Roles {
		if r == rol {
			return true
		}
	}
	return false
}
