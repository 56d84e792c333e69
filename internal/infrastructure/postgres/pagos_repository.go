package postgres

import (
	"context"
	"fmt"

	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

var _ repository.PagosRepository = (*PagosRepo)(nil)

// PagosRepo consultas de lectura para reportes de nómina (read-only).
type PagosRepo struct {
	db Querier
}

// NewPagosRepository construye el adaptador de lectura de reportes.
func NewPagosRepository(db Querier) *PagosRepo {
	return &PagosRepo{db: db}
}

const detalleSelect = `
	SELECT c.id, c.docente_id, c.periodo_id, c.area_id, c.materia,
	       c.horas, c.tarifa, c.pagable, c.version, c.creador_id,
	       c.created_at, c.updated_at,
	       d.codigo, d.nombre, a.nombre,
	       c.horas * c.tarifa AS importe
	FROM cargas_horas c
	JOIN docentes d ON d.id = c.docente_id
	JOIN areas a ON a.id = c.area_id`

// ListDetalle listado plano paginado con búsqueda por docente o materia
// (subcadena, case-insensitive).
func (r *PagosRepo) ListDetalle(ctx context.Context, periodoID, areaID, query string, limit, offset int) ([]*repository.CargaDetalle, int, error) {
	where := ` WHERE c.periodo_id = $1`
	args := []any{periodoID}
	if areaID != "" {
		args = append(args, areaID)
		where += fmt.Sprintf(` AND c.area_id = $%d`, len(args))
	}
	if query != "" {
		args = append(args, likePattern(query))
		where += fmt.Sprintf(` AND (d.nombre ILIKE $%d OR c.materia ILIKE $%d)`, len(args), len(args))
	}

	var total int
	countSQL := `SELECT COUNT(*) FROM cargas_horas c JOIN docentes d ON d.id = c.docente_id JOIN areas a ON a.id = c.area_id` + where
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count detalle: %w", err)
	}

	args = append(args, limit, offset)
	sql := detalleSelect + where + fmt.Sprintf(` ORDER BY d.nombre, c.materia LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	detalles, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	return detalles, total, nil
}

// ListDetallePeriodo todas las filas del periodo, sin paginar (pivote y exportes).
func (r *PagosRepo) ListDetallePeriodo(ctx context.Context, periodoID, areaID string) ([]*repository.CargaDetalle, error) {
	where := ` WHERE c.periodo_id = $1`
	args := []any{periodoID}
	if areaID != "" {
		where += ` AND c.area_id = $2`
		args = append(args, areaID)
	}
	return r.query(ctx, detalleSelect+where+` ORDER BY d.nombre, a.nombre, c.materia`, args...)
}

func (r *PagosRepo) query(ctx context.Context, sql string, args ...any) ([]*repository.CargaDetalle, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query detalle: %w", err)
	}
	defer rows.Close()

	var list []*repository.CargaDetalle
	for rows.Next() {
		var d repository.CargaDetalle
		if err := rows.Scan(
			&d.Carga.ID, &d.Carga.DocenteID, &d.Carga.PeriodoID, &d.Carga.AreaID, &d.Carga.Materia,
			&d.Carga.Horas, &d.Carga.Tarifa, &d.Carga.Pagable, &d.Carga.Version, &d.Carga.CreadorID,
			&d.Carga.CreatedAt, &d.Carga.UpdatedAt,
			&d.DocenteCodigo, &d.DocenteNombre, &d.AreaNombre,
			&d.Importe,
		); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
