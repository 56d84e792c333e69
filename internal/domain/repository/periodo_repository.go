package repository

import (
	"context"

	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
)

// PeriodoRepository define el puerto de persistencia para Periodo.
type PeriodoRepository interface {
	Create(ctx context.Context, periodo *entity.Periodo) error
	GetByID(ctx context.Context, id string) (*entity.Periodo, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Periodo, error)
	// GetAbierto devuelve el periodo en estado OPEN, o nil si no hay ninguno.
	GetAbierto(ctx context.Context) (*entity.Periodo, error)
	Update(ctx context.Context, periodo *entity.Periodo) error
	UpdateEstado(ctx context.Context, id, estado string) error
	List(ctx context.Context) ([]*entity.Periodo, error)
	ListByEstado(ctx context.Context, estado string) ([]*entity.Periodo, error)
}
