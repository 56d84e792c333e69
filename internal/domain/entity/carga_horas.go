package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CargaHoras registra las horas impartidas por un docente en una materia,
// dentro de un área y un periodo. La clave natural para upsert es
// (docente, periodo, área, materia); reenviar la misma clave actualiza el
// registro e incrementa Version en lugar de duplicar.
type CargaHoras struct {
	ID        string
	DocenteID string
	PeriodoID string
	AreaID    string
	Materia   string // texto libre
	Horas     decimal.Decimal // > 0
	Tarifa    decimal.Decimal // >= 0; forzada a 0 cuando Pagable es false
	Pagable   bool
	Version   int // contador informativo, se incrementa en cada actualización
	CreadorID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Importe devuelve el monto calculado: horas × tarifa.
func (c *CargaHoras) Importe() decimal.Decimal {
	return c.Horas.Mul(c.Tarifa)
}
