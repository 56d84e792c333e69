package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sisacad/nomina-docentes-api/internal/domain"
	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

var _ repository.PeriodoRepository = (*PeriodoRepo)(nil)

// PeriodoRepo implementación del puerto PeriodoRepository sobre PostgreSQL.
type PeriodoRepo struct {
	db Querier
}

// NewPeriodoRepository construye el adaptador de persistencia para periodos.
func NewPeriodoRepository(db Querier) *PeriodoRepo {
	return &PeriodoRepo{db: db}
}

// Create persiste un periodo nuevo (siempre llega en DRAFT).
func (r *PeriodoRepo) Create(ctx context.Context, p *entity.Periodo) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO periodos (id, nombre, inicio, fin, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Nombre, p.Inicio, p.Fin, p.Estado, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNombreAlreadyExists
		}
		return fmt.Errorf("insert periodo: %w", err)
	}
	return nil
}

// GetByID obtiene un periodo por ID.
func (r *PeriodoRepo) GetByID(ctx context.Context, id string) (*entity.Periodo, error) {
	return r.scanOne(ctx, `SELECT id, nombre, inicio, fin, estado, created_at, updated_at FROM periodos WHERE id = $1`, id)
}

// GetByNombre obtiene un periodo por nombre.
func (r *PeriodoRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Periodo, error) {
	return r.scanOne(ctx, `SELECT id, nombre, inicio, fin, estado, created_at, updated_at FROM periodos WHERE nombre = $1`, nombre)
}

// GetAbierto devuelve el periodo en estado OPEN, o nil si no hay ninguno.
// La invariante de unicidad la garantiza un índice parcial único sobre estado.
func (r *PeriodoRepo) GetAbierto(ctx context.Context) (*entity.Periodo, error) {
	return r.scanOne(ctx, `SELECT id, nombre, inicio, fin, estado, created_at, updated_at FROM periodos WHERE estado = $1`, entity.EstadoOpen)
}

func (r *PeriodoRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Periodo, error) {
	var p entity.Periodo
	err := r.db.QueryRow(ctx, query, args...).Scan(&p.ID, &p.Nombre, &p.Inicio, &p.Fin, &p.Estado, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get periodo: %w", err)
	}
	return &p, nil
}

// Update actualiza nombre y rango de fechas del periodo.
func (r *PeriodoRepo) Update(ctx context.Context, p *entity.Periodo) error {
	_, err := r.db.Exec(ctx, `
		UPDATE periodos SET nombre = $2, inicio = $3, fin = $4, updated_at = now()
		WHERE id = $1`,
		p.ID, p.Nombre, p.Inicio, p.Fin,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNombreAlreadyExists
		}
		return fmt.Errorf("update periodo: %w", err)
	}
	return nil
}

// UpdateEstado actualiza solo el estado del periodo.
func (r *PeriodoRepo) UpdateEstado(ctx context.Context, id, estado string) error {
	_, err := r.db.Exec(ctx, `UPDATE periodos SET estado = $2, updated_at = now() WHERE id = $1`, id, estado)
	if err != nil {
		if isUniqueViolation(err) {
			// índice parcial: dos OPEN simultáneos
			return domain.ErrConflict
		}
		return fmt.Errorf("update estado periodo: %w", err)
	}
	return nil
}

// List devuelve todos los periodos, más recientes primero.
func (r *PeriodoRepo) List(ctx context.Context) ([]*entity.Periodo, error) {
	return r.list(ctx, `SELECT id, nombre, inicio, fin, estado, created_at, updated_at FROM periodos ORDER BY inicio DESC`)
}

// ListByEstado devuelve los periodos en el estado dado.
func (r *PeriodoRepo) ListByEstado(ctx context.Context, estado string) ([]*entity.Periodo, error) {
	return r.list(ctx, `SELECT id, nombre, inicio, fin, estado, created_at, updated_at FROM periodos WHERE estado = $1 ORDER BY inicio DESC`, estado)
}

func (r *PeriodoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Periodo, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list periodos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Periodo
	for rows.Next() {
		var p entity.Periodo
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Inicio, &p.Fin, &p.Estado, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan periodo: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
