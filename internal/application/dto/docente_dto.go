package dto

import "time"

// CreateDocenteRequest entrada para dar de alta un docente (RFC estricto).
type CreateDocenteRequest struct {
	Codigo string `json:"codigo" validate:"required"`
	RFC    string `json:"rfc" validate:"required"`
	Nombre string `json:"nombre" validate:"required,min=1,max=200"`
}

// UpdateDocenteRequest entrada para actualizar un docente.
type UpdateDocenteRequest struct {
	RFC    *string `json:"rfc"`
	Nombre *string `json:"nombre"`
	Activo *bool   `json:"activo"`
}

// DocenteResponse salida de un docente.
type DocenteResponse struct {
	ID        string    `json:"id"`
	Codigo    string    `json:"codigo"`
	RFC       string    `json:"rfc"`
	Nombre    string    `json:"nombre"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocenteListResponse lista paginada de docentes.
type DocenteListResponse struct {
	Items []DocenteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ImportDocentesResponse resultado de una importación masiva de docentes.
// Los errores por fila no abortan el resto del archivo.
type ImportDocentesResponse struct {
	Registrados int        `json:"registrados"`
	Fallidos    int        `json:"fallidos"`
	Errores     []RowError `json:"errores"`
}

// RowError error de una fila de importación, con número de línea y motivo legible.
type RowError struct {
	Linea  int    `json:"linea"`
	Motivo string `json:"motivo"`
}

// DocenteRow fila cruda del Excel de importación de docentes.
type DocenteRow struct {
	Linea  int    `json:"linea"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	RFC    string `json:"rfc"`
}
