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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
// Los roles viven en usuario_roles y se agregan con array_agg en las lecturas.
type UsuarioRepo struct {
	db Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(db Querier) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const usuarioSelect = `
	SELECT u.id, u.nombre, u.correo, u.password_hash, u.activo, u.created_at, u.updated_at,
	       COALESCE(array_agg(ur.rol ORDER BY ur.rol) FILTER (WHERE ur.rol IS NOT NULL), '{}')
	FROM usuarios u
	LEFT JOIN usuario_roles ur ON ur.usuario_id = u.id`

// Create persiste un nuevo usuario con sus roles.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO usuarios (id, nombre, correo, password_hash, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Nombre, u.Correo, u.PasswordHash, u.Activo, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCorreoAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return r.guardarRoles(ctx, u.ID, u.Roles)
}

// GetByID obtiene un usuario por ID con sus roles.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.scanOne(ctx, usuarioSelect+` WHERE u.id = $1 GROUP BY u.id`, id)
}

// GetByCorreo obtiene un usuario por correo.
func (r *UsuarioRepo) GetByCorreo(ctx context.Context, correo string) (*entity.Usuario, error) {
	return r.scanOne(ctx, usuarioSelect+` WHERE u.correo = $1 GROUP BY u.id`, correo)
}

func (r *UsuarioRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Nombre, &u.Correo, &u.PasswordHash, &u.Activo, &u.CreatedAt, &u.UpdatedAt, &u.Roles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update actualiza el usuario y reescribe sus roles.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	_, err := r.db.Exec(ctx, `
		UPDATE usuarios SET nombre = $2, correo = $3, password_hash = $4, activo = $5, updated_at = $6
		WHERE id = $1`,
		u.ID, u.Nombre, u.Correo, u.PasswordHash, u.Activo, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCorreoAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return r.guardarRoles(ctx, u.ID, u.Roles)
}

func (r *UsuarioRepo) guardarRoles(ctx context.Context, usuarioID string, roles []string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM usuario_roles WHERE usuario_id = $1`, usuarioID); err != nil {
		return fmt.Errorf("limpiar roles: %w", err)
	}
	for _, rol := range roles {
		if _, err := r.db.Exec(ctx, `INSERT INTO usuario_roles (usuario_id, rol) VALUES ($1, $2)`, usuarioID, rol); err != nil {
			return fmt.Errorf("insert rol %s: %w", rol, err)
		}
	}
	return nil
}

// List lista usuarios con paginación y búsqueda por nombre o correo.
func (r *UsuarioRepo) List(ctx context.Context, query string, limit, offset int) ([]*entity.Usuario, int, error) {
	where := ``
	args := []any{}
	if query != "" {
		where = ` WHERE u.nombre ILIKE $1 OR u.correo ILIKE $1`
		args = append(args, likePattern(query))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios u`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count usuarios: %w", err)
	}

	sql := usuarioSelect + where + fmt.Sprintf(` GROUP BY u.id ORDER BY u.created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Correo, &u.PasswordHash, &u.Activo, &u.CreatedAt, &u.UpdatedAt, &u.Roles); err != nil {
			return nil, 0, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, total, rows.Err()
}

// TieneReferencias indica si el usuario aparece como coordinador de área o
// como creador de cargas de horas.
func (r *UsuarioRepo) TieneReferencias(ctx context.Context, id string) (bool, error) {
	var existe bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM coord_areas WHERE usuario_id = $1)
		    OR EXISTS (SELECT 1 FROM cargas_horas WHERE creador_id = $1)`, id).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("referencias usuario: %w", err)
	}
	return existe, nil
}

// Delete elimina un usuario por ID (y sus roles por cascada).
func (r *UsuarioRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM usuario_roles WHERE usuario_id = $1`, id); err != nil {
		return fmt.Errorf("delete roles: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
