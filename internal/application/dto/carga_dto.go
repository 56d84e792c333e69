package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CargaRow es una fila cruda de carga de horas, tal como llega del Excel o
// del formulario. Horas, Tarifa y Pagable son interface{} porque pueden
// llegar como número, booleano o cadena (con espacios incluidos); el motor
// de conciliación se encarga de normalizarlos.
type CargaRow struct {
	Linea   int         `json:"linea"`
	Codigo  string      `json:"codigo"`
	Materia string      `json:"materia"`
	Horas   interface{} `json:"horas"`
	Tarifa  interface{} `json:"tarifa"`
	Pagable interface{} `json:"pagable"`
}

// ProcesarLoteRequest lote a validar o confirmar: un solo (periodo, área)
// por lote, las filas no pueden mezclar áreas.
type ProcesarLoteRequest struct {
	PeriodoID string     `json:"periodo_id" validate:"required"`
	AreaID    string     `json:"area_id" validate:"required"`
	Filas     []CargaRow `json:"filas"`
}

// ProcesarIndividualRequest una sola fila capturada a mano.
type ProcesarIndividualRequest struct {
	PeriodoID string   `json:"periodo_id" validate:"required"`
	AreaID    string   `json:"area_id" validate:"required"`
	Fila      CargaRow `json:"fila"`
}

// CargaRowValidada fila aceptada por el motor, ya normalizada.
type CargaRowValidada struct {
	Linea         int             `json:"linea"`
	DocenteID     string          `json:"docente_id"`
	DocenteCodigo string          `json:"docente_codigo"`
	DocenteNombre string          `json:"docente_nombre"`
	Materia       string          `json:"materia"`
	Horas         decimal.Decimal `json:"horas"`
	Tarifa        decimal.Decimal `json:"tarifa"`
	Pagable       bool            `json:"pagable"`
	Importe       decimal.Decimal `json:"importe"`
}

// ProcesarLoteResponse resultado de una pasada del motor. En vista previa
// nada se persiste; en confirmación los contadores reflejan los upserts.
type ProcesarLoteResponse struct {
	Registradas int                `json:"registradas"`
	Fallidas    int                `json:"fallidas"`
	Validas     []CargaRowValidada `json:"validas"`
	Errores     []RowError         `json:"errores"`
}

// CargaResponse salida de una carga persistida.
type CargaResponse struct {
	ID            string          `json:"id"`
	DocenteID     string          `json:"docente_id"`
	DocenteCodigo string          `json:"docente_codigo"`
	DocenteNombre string          `json:"docente_nombre"`
	PeriodoID     string          `json:"periodo_id"`
	AreaID        string          `json:"area_id"`
	AreaNombre    string          `json:"area_nombre"`
	Materia       string          `json:"materia"`
	Horas         decimal.Decimal `json:"horas"`
	Tarifa        decimal.Decimal `json:"tarifa"`
	Pagable       bool            `json:"pagable"`
	Importe       decimal.Decimal `json:"importe"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CargaListResponse lista paginada de cargas.
type CargaListResponse struct {
	Items []CargaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
