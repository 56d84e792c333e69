package dto

import "time"

// CreateUsuarioRequest entrada para crear un usuario (solo ADMIN).
type CreateUsuarioRequest struct {
	Nombre   string   `json:"nombre" validate:"required,min=1,max=200"`
	Correo   string   `json:"correo" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles" validate:"required,min=1"`
}

// UpdateUsuarioRequest entrada para actualizar un usuario. Campos nil no se tocan.
type UpdateUsuarioRequest struct {
	Nombre   *string   `json:"nombre"`
	Correo   *string   `json:"correo"`
	Password *string   `json:"password"`
	Roles    *[]string `json:"roles"`
	Activo   *bool     `json:"activo"`
}

// UsuarioResponse salida de un usuario (sin hash de password).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Correo    string    `json:"correo"`
	Roles     []string  `json:"roles"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsuarioListResponse lista paginada de usuarios.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
