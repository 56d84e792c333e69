package entity

import "time"

// Docente representa a un miembro del personal docente. El código interno
// es una cadena numérica de ancho fijo (6 dígitos, con ceros a la izquierda).
type Docente struct {
	ID        string
	Codigo    string // único, 6 dígitos
	RFC       string // clave fiscal, validada por patrón
	Nombre    string
	Activo    bool // false = baja lógica cuando tiene cargas asociadas
	CreatedAt time.Time
	UpdatedAt time.Time
}
