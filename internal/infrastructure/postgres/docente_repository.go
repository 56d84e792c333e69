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

var _ repository.DocenteRepository = (*DocenteRepo)(nil)

// DocenteRepo implementación del puerto DocenteRepository sobre PostgreSQL.
type DocenteRepo struct {
	db Querier
}

// NewDocenteRepository construye el adaptador de persistencia para docentes.
func NewDocenteRepository(db Querier) *DocenteRepo {
	return &DocenteRepo{db: db}
}

// Create persiste un docente nuevo.
func (r *DocenteRepo) Create(ctx context.Context, d *entity.Docente) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO docentes (id, codigo, rfc, nombre, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.Codigo, d.RFC, d.Nombre, d.Activo, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoAlreadyExists
		}
		return fmt.Errorf("insert docente: %w", err)
	}
	return nil
}

// GetByID obtiene un docente por ID.
func (r *DocenteRepo) GetByID(ctx context.Context, id string) (*entity.Docente, error) {
	return r.scanOne(ctx, `SELECT id, codigo, rfc, nombre, activo, created_at, updated_at FROM docentes WHERE id = $1`, id)
}

// GetByCodigo obtiene un docente por su código interno (ya normalizado a 6 dígitos).
func (r *DocenteRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Docente, error) {
	return r.scanOne(ctx, `SELECT id, codigo, rfc, nombre, activo, created_at, updated_at FROM docentes WHERE codigo = $1`, codigo)
}

func (r *DocenteRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Docente, error) {
	var d entity.Docente
	err := r.db.QueryRow(ctx, query, args...).Scan(&d.ID, &d.Codigo, &d.RFC, &d.Nombre, &d.Activo, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get docente: %w", err)
	}
	return &d, nil
}

// Update actualiza un docente.
func (r *DocenteRepo) Update(ctx context.Context, d *entity.Docente) error {
	_, err := r.db.Exec(ctx, `
		UPDATE docentes SET rfc = $2, nombre = $3, activo = $4, updated_at = $5 WHERE id = $1`,
		d.ID, d.RFC, d.Nombre, d.Activo, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update docente: %w", err)
	}
	return nil
}

// List lista docentes con paginación y búsqueda por nombre, código o RFC.
func (r *DocenteRepo) List(ctx context.Context, query string, limit, offset int) ([]*entity.Docente, int, error) {
	where := ``
	args := []any{}
	if query != "" {
		where = ` WHERE nombre ILIKE $1 OR codigo ILIKE $1 OR rfc ILIKE $1`
		args = append(args, likePattern(query))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM docentes`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count docentes: %w", err)
	}

	sql := fmt.Sprintf(`SELECT id, codigo, rfc, nombre, activo, created_at, updated_at FROM docentes%s ORDER BY nombre LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list docentes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Docente
	for rows.Next() {
		var d entity.Docente
		if err := rows.Scan(&d.ID, &d.Codigo, &d.RFC, &d.Nombre, &d.Activo, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan docente: %w", err)
		}
		list = append(list, &d)
	}
	return list, total, rows.Err()
}

// TieneCargas indica si el docente está referenciado por alguna carga de horas.
func (r *DocenteRepo) TieneCargas(ctx context.Context, id string) (bool, error) {
	var existe bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cargas_horas WHERE docente_id = $1)`, id).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("cargas de docente: %w", err)
	}
	return existe, nil
}

// Delete elimina un docente por ID.
func (r *DocenteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM docentes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete docente: %w", err)
	}
	return nil
}
