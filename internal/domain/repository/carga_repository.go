package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
)

// CargaHorasRepository define el puerto de persistencia para CargaHoras.
// La clave natural de upsert es (docente, periodo, área, materia); la
// comparación de materia la hace el motor con su plegado de mayúsculas y
// acentos, por eso el puerto expone las cargas del docente y no un lookup
// por materia exacta.
type CargaHorasRepository interface {
	GetByID(ctx context.Context, id string) (*entity.CargaHoras, error)
	// ListByDocente devuelve las cargas del docente en (periodo, área).
	ListByDocente(ctx context.Context, docenteID, periodoID, areaID string) ([]*entity.CargaHoras, error)
	Insert(ctx context.Context, carga *entity.CargaHoras) error
	Update(ctx context.Context, carga *entity.CargaHoras) error
	Delete(ctx context.Context, id string) error
	// ListByPeriodo devuelve todas las cargas del periodo; areaID vacío = todas las áreas.
	ListByPeriodo(ctx context.Context, periodoID, areaID string) ([]*entity.CargaHoras, error)
}

// CargaDetalle es la fila de lectura para reportes: carga + campos de
// presentación del docente y del área. La produce la DB; el use case la
// convierte en DTO.
type CargaDetalle struct {
	Carga         entity.CargaHoras
	DocenteCodigo string
	DocenteNombre string
	AreaNombre    string
	Importe       decimal.Decimal
}

// PagosRepository define las consultas de lectura para reportes de nómina.
// Las implementaciones son read-only.
type PagosRepository interface {
	// ListDetalle devuelve cargas del periodo unidas con docente y área,
	// con búsqueda case-insensitive por nombre de docente o materia.
	// areaID vacío = todas las áreas.
	ListDetalle(ctx context.Context, periodoID, areaID, query string, limit, offset int) ([]*CargaDetalle, int, error)
	// ListDetallePeriodo devuelve todas las filas del periodo (sin paginar),
	// para el pivote y los exportes. areaID vacío = todas las áreas.
	ListDetallePeriodo(ctx context.Context, periodoID, areaID string) ([]*CargaDetalle, error)
}
