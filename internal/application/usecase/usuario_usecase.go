package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sisacad/nomina-docentes-api/internal/application/audit"
	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain"
	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

// rolesValidos roles reconocidos por el sistema.
var rolesValidos = map[string]bool{
	entity.RolAdmin: true,
	entity.RolRH:    true,
	entity.RolCoord: true,
}

// UsuarioUseCase CRUD de usuarios. Mutaciones solo ADMIN (se valida en rutas).
type UsuarioUseCase struct {
	repo      repository.UsuarioRepository
	auditoria repository.AuditoriaRepository
}

// NewUsuarioUseCase construye el caso de uso de usuarios.
func NewUsuarioUseCase(repo repository.UsuarioRepository, auditoria repository.AuditoriaRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, auditoria: auditoria}
}

// Create da de alta un usuario con password hasheado y roles validados.
func (uc *UsuarioUseCase) Create(ctx context.Context, actorID string, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	for _, r := range in.Roles {
		if !rolesValidos[r] {
			return nil, domain.ErrInvalidInput
		}
	}
	existente, err := uc.repo.GetByCorreo(ctx, in.Correo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrCorreoAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Correo:       in.Correo,
		PasswordHash: string(hash),
		Roles:        in.Roles,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "usuario.crear", "usuario", usuario.ID,
		map[string]interface{}{"correo": usuario.Correo, "roles": usuario.Roles})
	return toUsuarioResponse(usuario), nil
}

// GetByID busca un usuario por id.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	return toUsuarioResponse(usuario), nil
}

// List lista usuarios con paginación y búsqueda por nombre o correo.
func (uc *UsuarioUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.UsuarioListResponse, error) {
	page.DefaultPage()
	usuarios, total, err := uc.repo.List(ctx, page.Query, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		items = append(items, *toUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// Update modifica los campos enviados. Cambiar el correo verifica unicidad.
func (uc *UsuarioUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	if in.Correo != nil && *in.Correo != usuario.Correo {
		existente, err := uc.repo.GetByCorreo(ctx, *in.Correo)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrCorreoAlreadyExists
		}
		usuario.Correo = *in.Correo
	}
	if in.Nombre != nil {
		usuario.Nombre = *in.Nombre
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}
	if in.Roles != nil {
		for _, r := range *in.Roles {
			if !rolesValidos[r] {
				return nil, domain.ErrInvalidInput
			}
		}
		usuario.Roles = *in.Roles
	}
	if in.Activo != nil {
		usuario.Activo = *in.Activo
	}
	usuario.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "usuario.actualizar", "usuario", usuario.ID, nil)
	return toUsuarioResponse(usuario), nil
}

// Delete elimina un usuario. Si está referenciado (coordinaciones o cargas
// creadas) se da de baja lógica en lugar de borrarlo.
func (uc *UsuarioUseCase) Delete(ctx context.Context, actorID, id string) error {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUsuarioNotFound
	}
	referenciado, err := uc.repo.TieneReferencias(ctx, id)
	if err != nil {
		return err
	}
	if referenciado {
		usuario.Activo = false
		usuario.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, usuario); err != nil {
			return err
		}
		audit.Registrar(ctx, uc.auditoria, actorID, "usuario.baja_logica", "usuario", id, nil)
		return nil
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "usuario.eliminar", "usuario", id, nil)
	return nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Correo:    u.Correo,
		Roles:     u.Roles,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
