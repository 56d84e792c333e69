package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

var _ repository.CargaHorasRepository = (*CargaHorasRepo)(nil)

// CargaHorasRepo implementación del puerto CargaHorasRepository. La unicidad
// de la clave natural (docente, periodo, área, materia) la respalda un
// constraint único; el motor upserta consultando primero la clave.
type CargaHorasRepo struct {
	db Querier
}

// NewCargaHorasRepository construye el adaptador de persistencia para cargas.
func NewCargaHorasRepository(db Querier) *CargaHorasRepo {
	return &CargaHorasRepo{db: db}
}

const cargaColumns = `id, docente_id, periodo_id, area_id, materia, horas, tarifa, pagable, version, creador_id, created_at, updated_at`

// GetByID obtiene una carga por ID.
func (r *CargaHorasRepo) GetByID(ctx context.Context, id string) (*entity.CargaHoras, error) {
	return r.scanOne(ctx, `SELECT `+cargaColumns+` FROM cargas_horas WHERE id = $1`, id)
}

// ListByDocente devuelve las cargas del docente en (periodo, área). El
// motor compara materia sobre este conjunto con su propio plegado; un
// filtro exacto en SQL no distingue acentos.
func (r *CargaHorasRepo) ListByDocente(ctx context.Context, docenteID, periodoID, areaID string) ([]*entity.CargaHoras, error) {
	return r.list(ctx, `
		SELECT `+cargaColumns+` FROM cargas_horas
		WHERE docente_id = $1 AND periodo_id = $2 AND area_id = $3`,
		docenteID, periodoID, areaID)
}

func (r *CargaHorasRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.CargaHoras, error) {
	var c entity.CargaHoras
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.DocenteID, &c.PeriodoID, &c.AreaID, &c.Materia,
		&c.Horas, &c.Tarifa, &c.Pagable, &c.Version, &c.CreadorID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get carga: %w", err)
	}
	return &c, nil
}

// Insert persiste una carga nueva (version 1).
func (r *CargaHorasRepo) Insert(ctx context.Context, c *entity.CargaHoras) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cargas_horas (`+cargaColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.DocenteID, c.PeriodoID, c.AreaID, c.Materia,
		c.Horas, c.Tarifa, c.Pagable, c.Version, c.CreadorID,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert carga: %w", err)
	}
	return nil
}

// Update reescribe horas, tarifa, pagable, version y creador de una carga.
func (r *CargaHorasRepo) Update(ctx context.Context, c *entity.CargaHoras) error {
	_, err := r.db.Exec(ctx, `
		UPDATE cargas_horas
		SET horas = $2, tarifa = $3, pagable = $4, version = $5, creador_id = $6, updated_at = $7
		WHERE id = $1`,
		c.ID, c.Horas, c.Tarifa, c.Pagable, c.Version, c.CreadorID, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update carga: %w", err)
	}
	return nil
}

// Delete elimina una carga por ID.
func (r *CargaHorasRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM cargas_horas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete carga: %w", err)
	}
	return nil
}

// ListByPeriodo devuelve todas las cargas del periodo; areaID vacío = todas.
func (r *CargaHorasRepo) ListByPeriodo(ctx context.Context, periodoID, areaID string) ([]*entity.CargaHoras, error) {
	query := `SELECT ` + cargaColumns + ` FROM cargas_horas WHERE periodo_id = $1`
	args := []any{periodoID}
	if areaID != "" {
		query += ` AND area_id = $2`
		args = append(args, areaID)
	}
	return r.list(ctx, query, args...)
}

func (r *CargaHorasRepo) list(ctx context.Context, query string, args ...any) ([]*entity.CargaHoras, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cargas: %w", err)
	}
	defer rows.Close()

	var list []*entity.CargaHoras
	for rows.Next() {
		var c entity.CargaHoras
		if err := rows.Scan(
			&c.ID, &c.DocenteID, &c.PeriodoID, &c.AreaID, &c.Materia,
			&c.Horas, &c.Tarifa, &c.Pagable, &c.Version, &c.CreadorID,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan carga: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
