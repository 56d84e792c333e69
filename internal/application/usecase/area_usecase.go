package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sisacad/nomina-docentes-api/internal/application/audit"
	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain"
	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

// AreaUseCase CRUD de áreas y asignación de coordinadores.
type AreaUseCase struct {
	repo      repository.AreaRepository
	coordRepo repository.CoordAreaRepository
	usuarios  repository.UsuarioRepository
	auditoria repository.AuditoriaRepository
}

// NewAreaUseCase construye el caso de uso de áreas.
func NewAreaUseCase(repo repository.AreaRepository, coordRepo repository.CoordAreaRepository, usuarios repository.UsuarioRepository, auditoria repository.AuditoriaRepository) *AreaUseCase {
	return &AreaUseCase{repo: repo, coordRepo: coordRepo, usuarios: usuarios, auditoria: auditoria}
}

// Create da de alta un área con nombre único.
func (uc *AreaUseCase) Create(ctx context.Context, actorID string, in dto.CreateAreaRequest) (*dto.AreaResponse, error) {
	existente, err := uc.repo.GetByNombre(ctx, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrNombreAlreadyExists
	}
	now := time.Now()
	area := &entity.Area{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, area); err != nil {
		return nil, err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "area.crear", "area", area.ID,
		map[string]string{"nombre": area.Nombre})
	return toAreaResponse(area), nil
}

// GetByID busca un área por id.
func (uc *AreaUseCase) GetByID(ctx context.Context, id string) (*dto.AreaResponse, error) {
	area, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}
	return toAreaResponse(area), nil
}

// List lista áreas con paginación y búsqueda por nombre.
func (uc *AreaUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.AreaListResponse, error) {
	page.DefaultPage()
	areas, total, err := uc.repo.List(ctx, page.Query, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.AreaResponse, 0, len(areas))
	for _, a := range areas {
		items = append(items, *toAreaResponse(a))
	}
	return &dto.AreaListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// Update modifica los campos enviados; el nombre mantiene unicidad.
func (uc *AreaUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateAreaRequest) (*dto.AreaResponse, error) {
	area, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil && *in.Nombre != area.Nombre {
		existente, err := uc.repo.GetByNombre(ctx, *in.Nombre)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrNombreAlreadyExists
		}
		area.Nombre = *in.Nombre
	}
	if in.Activo != nil {
		area.Activo = *in.Activo
	}
	area.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, area); err != nil {
		return nil, err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "area.actualizar", "area", id, nil)
	return toAreaResponse(area), nil
}

// Delete elimina un área. Con coordinadores o cargas asociadas se da de
// baja lógica en lugar de borrarla.
func (uc *AreaUseCase) Delete(ctx context.Context, actorID, id string) error {
	area, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if area == nil {
		return domain.ErrNotFound
	}
	referenciada, err := uc.repo.TieneReferencias(ctx, id)
	if err != nil {
		return err
	}
	if referenciada {
		area.Activo = false
		area.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, area); err != nil {
			return err
		}
		audit.Registrar(ctx, uc.auditoria, actorID, "area.baja_logica", "area", id, nil)
		return nil
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "area.eliminar", "area", id, nil)
	return nil
}

// AsignarCoordinador asigna la coordinación del área a un usuario con rol COORD.
func (uc *AreaUseCase) AsignarCoordinador(ctx context.Context, actorID, areaID string, in dto.AsignarCoordinadorRequest) error {
	area, err := uc.repo.GetByID(ctx, areaID)
	if err != nil {
		return err
	}
	if area == nil {
		return domain.ErrNotFound
	}
	usuario, err := uc.usuarios.GetByID(ctx, in.UsuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUsuarioNotFound
	}
	if !usuario.TieneRol(entity.RolCoord) {
		return domain.ErrInvalidInput
	}
	ya, err := uc.coordRepo.EsCoordinador(ctx, areaID, in.UsuarioID)
	if err != nil {
		return err
	}
	if ya {
		return domain.ErrDuplicate
	}
	ca := &entity.CoordArea{
		ID:        uuid.New().String(),
		AreaID:    areaID,
		UsuarioID: in.UsuarioID,
		CreatedAt: time.Now(),
	}
	if err := uc.coordRepo.Asignar(ctx, ca); err != nil {
		return err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "area.asignar_coordinador", "area", areaID,
		map[string]string{"usuario_id": in.UsuarioID})
	return nil
}

// QuitarCoordinador retira la asignación de coordinación.
func (uc *AreaUseCase) QuitarCoordinador(ctx context.Context, actorID, areaID, usuarioID string) error {
	ya, err := uc.coordRepo.EsCoordinador(ctx, areaID, usuarioID)
	if err != nil {
		return err
	}
	if !ya {
		return domain.ErrNotFound
	}
	if err := uc.coordRepo.Quitar(ctx, areaID, usuarioID); err != nil {
		return err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "area.quitar_coordinador", "area", areaID,
		map[string]string{"usuario_id": usuarioID})
	return nil
}

// ListCoordinadores devuelve los coordinadores asignados al área.
func (uc *AreaUseCase) ListCoordinadores(ctx context.Context, areaID string) ([]dto.CoordinadorResponse, error) {
	area, err := uc.repo.GetByID(ctx, areaID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}
	asignaciones, err := uc.coordRepo.ListByArea(ctx, areaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CoordinadorResponse, 0, len(asignaciones))
	for _, ca := range asignaciones {
		usuario, err := uc.usuarios.GetByID(ctx, ca.UsuarioID)
		if err != nil {
			return nil, err
		}
		if usuario == nil {
			continue
		}
		out = append(out, dto.CoordinadorResponse{
			UsuarioID: usuario.ID,
			Nombre:    usuario.Nombre,
			Correo:    usuario.Correo,
			CreatedAt: ca.CreatedAt,
		})
	}
	return out, nil
}

func toAreaResponse(a *entity.Area) *dto.AreaResponse {
	if a == nil {
		return nil
	}
	return &dto.AreaResponse{
		ID:        a.ID,
		Nombre:    a.Nombre,
		Activo:    a.Activo,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
