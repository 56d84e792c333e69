package repository

import (
	"context"

	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
)

// AreaRepository define el puerto de persistencia para Area.
type AreaRepository interface {
	Create(ctx context.Context, area *entity.Area) error
	GetByID(ctx context.Context, id string) (*entity.Area, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Area, error)
	Update(ctx context.Context, area *entity.Area) error
	List(ctx context.Context, query string, limit, offset int) ([]*entity.Area, int, error)
	ListActivas(ctx context.Context) ([]*entity.Area, error)
	// TieneReferencias indica si el área tiene coordinadores o cargas asociadas.
	TieneReferencias(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// CoordAreaRepository define el puerto para asignaciones coordinador ↔ área.
type CoordAreaRepository interface {
	Asignar(ctx context.Context, ca *entity.CoordArea) error
	Quitar(ctx context.Context, areaID, usuarioID string) error
	ListByArea(ctx context.Context, areaID string) ([]*entity.CoordArea, error)
	ListAreasByUsuario(ctx context.Context, usuarioID string) ([]string, error)
	// EsCoordinador indica si el usuario está asignado al área.
	EsCoordinador(ctx context.Context, areaID, usuarioID string) (bool, error)
}
