package dto

import "github.com/shopspring/decimal"

// ReportePagosRequest parámetros del reporte plano de pagos.
type ReportePagosRequest struct {
	PeriodoID string `query:"periodo_id"`
	AreaID    string `query:"area_id"` // opcional
	PageRequest
}

// PivoteResponse matriz docentes × áreas con importes sumados.
// Las columnas son las áreas activas; la última fila es el total por columna.
type PivoteResponse struct {
	PeriodoID string        `json:"periodo_id"`
	Areas     []PivoteArea  `json:"areas"`
	Filas     []PivoteFila  `json:"filas"`
	Totales   []decimal.Decimal `json:"totales"` // por columna, alineado con Areas
	GranTotal decimal.Decimal   `json:"gran_total"`
}

// PivoteArea columna del pivote.
type PivoteArea struct {
	AreaID string `json:"area_id"`
	Nombre string `json:"nombre"`
}

// PivoteFila fila del pivote: un docente con su importe por área y total.
type PivoteFila struct {
	DocenteID     string            `json:"docente_id"`
	DocenteCodigo string            `json:"docente_codigo"`
	DocenteNombre string            `json:"docente_nombre"`
	Importes      []decimal.Decimal `json:"importes"` // alineado con Areas
	Total         decimal.Decimal   `json:"total"`
}
