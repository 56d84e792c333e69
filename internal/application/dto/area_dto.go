package dto

import "time"

// CreateAreaRequest entrada para crear un área.
type CreateAreaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=200"`
}

// UpdateAreaRequest entrada para actualizar un área.
type UpdateAreaRequest struct {
	Nombre *string `json:"nombre"`
	Activo *bool   `json:"activo"`
}

// AreaResponse salida de un área.
type AreaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AreaListResponse lista paginada de áreas.
type AreaListResponse struct {
	Items []AreaResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// AsignarCoordinadorRequest entrada de /areas/:id/coordinadores.
type AsignarCoordinadorRequest struct {
	UsuarioID string `json:"usuario_id" validate:"required"`
}

// CoordinadorResponse coordinador asignado a un área.
type CoordinadorResponse struct {
	UsuarioID string    `json:"usuario_id"`
	Nombre    string    `json:"nombre"`
	Correo    string    `json:"correo"`
	CreatedAt time.Time `json:"created_at"`
}
