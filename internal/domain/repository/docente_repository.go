package repository

import (
	"context"

	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
)

// DocenteRepository define el puerto de persistencia para Docente.
type DocenteRepository interface {
	Create(ctx context.Context, docente *entity.Docente) error
	GetByID(ctx context.Context, id string) (*entity.Docente, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Docente, error)
	Update(ctx context.Context, docente *entity.Docente) error
	List(ctx context.Context, query string, limit, offset int) ([]*entity.Docente, int, error)
	// TieneCargas indica si el docente está referenciado por alguna carga de horas.
	TieneCargas(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}
