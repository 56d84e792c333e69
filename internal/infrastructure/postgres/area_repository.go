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

var _ repository.AreaRepository = (*AreaRepo)(nil)

// AreaRepo implementación del puerto AreaRepository sobre PostgreSQL.
type AreaRepo struct {
	db Querier
}

// NewAreaRepository construye el adaptador de persistencia para áreas.
func NewAreaRepository(db Querier) *AreaRepo {
	return &AreaRepo{db: db}
}

// Create persiste un área nueva.
func (r *AreaRepo) Create(ctx context.Context, a *entity.Area) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO areas (id, nombre, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Nombre, a.Activo, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNombreAlreadyExists
		}
		return fmt.Errorf("insert area: %w", err)
	}
	return nil
}

// GetByID obtiene un área por ID.
func (r *AreaRepo) GetByID(ctx context.Context, id string) (*entity.Area, error) {
	return r.scanOne(ctx, `SELECT id, nombre, activo, created_at, updated_at FROM areas WHERE id = $1`, id)
}

// GetByNombre obtiene un área por nombre exacto.
func (r *AreaRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Area, error) {
	return r.scanOne(ctx, `SELECT id, nombre, activo, created_at, updated_at FROM areas WHERE nombre = $1`, nombre)
}

func (r *AreaRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Area, error) {
	var a entity.Area
	err := r.db.QueryRow(ctx, query, args...).Scan(&a.ID, &a.Nombre, &a.Activo, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area: %w", err)
	}
	return &a, nil
}

// Update actualiza un área.
func (r *AreaRepo) Update(ctx context.Context, a *entity.Area) error {
	_, err := r.db.Exec(ctx, `
		UPDATE areas SET nombre = $2, activo = $3, updated_at = $4 WHERE id = $1`,
		a.ID, a.Nombre, a.Activo, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNombreAlreadyExists
		}
		return fmt.Errorf("update area: %w", err)
	}
	return nil
}

// List lista áreas con paginación y búsqueda por nombre.
func (r *AreaRepo) List(ctx context.Context, query string, limit, offset int) ([]*entity.Area, int, error) {
	where := ``
	args := []any{}
	if query != "" {
		where = ` WHERE nombre ILIKE $1`
		args = append(args, likePattern(query))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM areas`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count areas: %w", err)
	}

	sql := fmt.Sprintf(`SELECT id, nombre, activo, created_at, updated_at FROM areas%s ORDER BY nombre LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Activo, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan area: %w", err)
		}
		list = append(list, &a)
	}
	return list, total, rows.Err()
}

// ListActivas devuelve las áreas activas ordenadas por nombre (columnas del pivote).
func (r *AreaRepo) ListActivas(ctx context.Context) ([]*entity.Area, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nombre, activo, created_at, updated_at FROM areas WHERE activo ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list areas activas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Activo, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// TieneReferencias indica si el área tiene coordinadores o cargas asociadas.
func (r *AreaRepo) TieneReferencias(ctx context.Context, id string) (bool, error) {
	var existe bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM coord_areas WHERE area_id = $1)
		    OR EXISTS (SELECT 1 FROM cargas_horas WHERE area_id = $1)`, id).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("referencias area: %w", err)
	}
	return existe, nil
}

// Delete elimina un área por ID.
func (r *AreaRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM areas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete area: %w", err)
	}
	return nil
}

var _ repository.CoordAreaRepository = (*CoordAreaRepo)(nil)

// CoordAreaRepo implementación del puerto CoordAreaRepository.
type CoordAreaRepo struct {
	db Querier
}

// NewCoordAreaRepository construye el adaptador de asignaciones coordinador ↔ área.
func NewCoordAreaRepository(db Querier) *CoordAreaRepo {
	return &CoordAreaRepo{db: db}
}

// Asignar registra la asignación de un coordinador a un área.
func (r *CoordAreaRepo) Asignar(ctx context.Context, ca *entity.CoordArea) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO coord_areas (id, area_id, usuario_id, created_at) VALUES ($1, $2, $3, $4)`,
		ca.ID, ca.AreaID, ca.UsuarioID, ca.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert coord_area: %w", err)
	}
	return nil
}

// Quitar elimina la asignación.
func (r *CoordAreaRepo) Quitar(ctx context.Context, areaID, usuarioID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM coord_areas WHERE area_id = $1 AND usuario_id = $2`, areaID, usuarioID); err != nil {
		return fmt.Errorf("delete coord_area: %w", err)
	}
	return nil
}

// ListByArea devuelve las asignaciones de un área.
func (r *CoordAreaRepo) ListByArea(ctx context.Context, areaID string) ([]*entity.CoordArea, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, area_id, usuario_id, created_at FROM coord_areas WHERE area_id = $1 ORDER BY created_at`, areaID)
	if err != nil {
		return nil, fmt.Errorf("list coord_areas: %w", err)
	}
	defer rows.Close()

	var list []*entity.CoordArea
	for rows.Next() {
		var ca entity.CoordArea
		if err := rows.Scan(&ca.ID, &ca.AreaID, &ca.UsuarioID, &ca.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan coord_area: %w", err)
		}
		list = append(list, &ca)
	}
	return list, rows.Err()
}

// ListAreasByUsuario devuelve los IDs de área que coordina un usuario.
func (r *CoordAreaRepo) ListAreasByUsuario(ctx context.Context, usuarioID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT area_id FROM coord_areas WHERE usuario_id = $1`, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("areas por usuario: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan area_id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// EsCoordinador indica si el usuario está asignado al área.
func (r *CoordAreaRepo) EsCoordinador(ctx context.Context, areaID, usuarioID string) (bool, error) {
	var existe bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM coord_areas WHERE area_id = $1 AND usuario_id = $2)`,
		areaID, usuarioID).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("es coordinador: %w", err)
	}
	return existe, nil
}
