package dto

import "time"

// CreatePeriodoRequest entrada para crear un periodo (siempre nace en DRAFT).
type CreatePeriodoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
	Inicio string `json:"inicio" validate:"required"` // YYYY-MM-DD
	Fin    string `json:"fin" validate:"required"`    // YYYY-MM-DD
}

// UpdatePeriodoRequest entrada para corregir los datos de un periodo en
// DRAFT. Los campos vacíos se conservan.
type UpdatePeriodoRequest struct {
	Nombre string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Inicio string `json:"inicio" validate:"omitempty"` // YYYY-MM-DD
	Fin    string `json:"fin" validate:"omitempty"`    // YYYY-MM-DD
}

// PeriodoResponse salida de un periodo.
type PeriodoResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Inicio    string    `json:"inicio"`
	Fin       string    `json:"fin"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PeriodoListResponse lista de periodos.
type PeriodoListResponse struct {
	Items []PeriodoResponse `json:"items"`
}
