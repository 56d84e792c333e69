package entity

import "time"

// Estados del ciclo de vida de un periodo de nómina. La única ruta legal es
// DRAFT → OPEN → CLOSED → REPORTED, sin saltos ni retrocesos.
const (
	EstadoDraft    = "DRAFT"
	EstadoOpen     = "OPEN"
	EstadoClosed   = "CLOSED"
	EstadoReported = "REPORTED"
)

// Periodo representa un ciclo de nómina. A lo sumo un periodo puede estar
// en estado OPEN en todo el sistema.
type Periodo struct {
	ID        string
	Nombre    string // único
	Inicio    time.Time
	Fin       time.Time
	Estado    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
