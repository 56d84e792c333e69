package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sisacad/nomina-docentes-api/internal/application/audit"
	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain"
	docdom "github.com/sisacad/nomina-docentes-api/internal/domain/docente"
	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

// DocenteUseCase CRUD e importación masiva de docentes.
type DocenteUseCase struct {
	repo      repository.DocenteRepository
	auditoria repository.AuditoriaRepository
}

// NewDocenteUseCase construye el caso de uso de docentes.
func NewDocenteUseCase(repo repository.DocenteRepository, auditoria repository.AuditoriaRepository) *DocenteUseCase {
	return &DocenteUseCase{repo: repo, auditoria: auditoria}
}

// Create da de alta un docente. El alta manual exige RFC con homoclave
// (patrón estricto); el código se normaliza a 6 dígitos.
func (uc *DocenteUseCase) Create(ctx context.Context, actorID string, in dto.CreateDocenteRequest) (*dto.DocenteResponse, error) {
	rfc := docdom.NormalizarRFC(in.RFC)
	if err := docdom.ValidarRFCEstricto(rfc); err != nil {
		return nil, domain.ErrInvalidInput
	}
	codigo := docdom.NormalizarCodigo(in.Codigo)
	if codigo == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrCodigoAlreadyExists
	}
	now := time.Now()
	doc := &entity.Docente{
		ID:        uuid.New().String(),
		Codigo:    codigo,
		RFC:       rfc,
		Nombre:    in.Nombre,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "docente.crear", "docente", doc.ID,
		map[string]string{"codigo": doc.Codigo})
	return toDocenteResponse(doc), nil
}

// GetByID busca un docente por id.
func (uc *DocenteUseCase) GetByID(ctx context.Context, id string) (*dto.DocenteResponse, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocenteNotFound
	}
	return toDocenteResponse(doc), nil
}

// List lista docentes con paginación y búsqueda por nombre, código o RFC.
func (uc *DocenteUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.DocenteListResponse, error) {
	page.DefaultPage()
	docentes, total, err := uc.repo.List(ctx, page.Query, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocenteResponse, 0, len(docentes))
	for _, d := range docentes {
		items = append(items, *toDocenteResponse(d))
	}
	return &dto.DocenteListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// Update modifica los campos enviados. El RFC acepta aquí el patrón
// tolerante (registros legados pueden venir sin homoclave).
func (uc *DocenteUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateDocenteRequest) (*dto.DocenteResponse, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocenteNotFound
	}
	if in.RFC != nil {
		rfc := docdom.NormalizarRFC(*in.RFC)
		if err := docdom.ValidarRFC(rfc); err != nil {
			return nil, domain.ErrInvalidInput
		}
		doc.RFC = rfc
	}
	if in.Nombre != nil {
		doc.Nombre = *in.Nombre
	}
	if in.Activo != nil {
		doc.Activo = *in.Activo
	}
	doc.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "docente.actualizar", "docente", id, nil)
	return toDocenteResponse(doc), nil
}

// Delete elimina un docente. Con cargas asociadas se da de baja lógica.
func (uc *DocenteUseCase) Delete(ctx context.Context, actorID, id string) error {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrDocenteNotFound
	}
	conCargas, err := uc.repo.TieneCargas(ctx, id)
	if err != nil {
		return err
	}
	if conCargas {
		doc.Activo = false
		doc.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, doc); err != nil {
			return err
		}
		audit.Registrar(ctx, uc.auditoria, actorID, "docente.baja_logica", "docente", id, nil)
		return nil
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "docente.eliminar", "docente", id, nil)
	return nil
}

// Importar procesa filas del Excel de docentes. Filas inválidas se reportan
// con línea y motivo sin abortar el resto; los códigos existentes se
// actualizan en lugar de duplicarse. Una entrada de auditoría por lote.
func (uc *DocenteUseCase) Importar(ctx context.Context, actorID string, filas []dto.DocenteRow) (*dto.ImportDocentesResponse, error) {
	out := &dto.ImportDocentesResponse{Errores: []dto.RowError{}}
	for _, fila := range filas {
		if err := uc.importarFila(ctx, fila); err != nil {
			out.Fallidos++
			out.Errores = append(out.Errores, dto.RowError{Linea: fila.Linea, Motivo: err.Error()})
			continue
		}
		out.Registrados++
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "docente.importar", "docente", "",
		map[string]int{"registrados": out.Registrados, "fallidos": out.Fallidos})
	return out, nil
}

func (uc *DocenteUseCase) importarFila(ctx context.Context, fila dto.DocenteRow) error {
	codigo := docdom.NormalizarCodigo(fila.Codigo)
	if codigo == "" {
		return fmt.Errorf("código vacío")
	}
	if fila.Nombre == "" {
		return fmt.Errorf("nombre vacío")
	}
	rfc := docdom.NormalizarRFC(fila.RFC)
	if rfc != "" {
		// En importación se tolera RFC sin homoclave
		if err := docdom.ValidarRFC(rfc); err != nil {
			return fmt.Errorf("RFC inválido: %s", fila.RFC)
		}
	}
	existente, err := uc.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return err
	}
	now := time.Now()
	if existente != nil {
		existente.Nombre = fila.Nombre
		if rfc != "" {
			existente.RFC = rfc
		}
		existente.UpdatedAt = now
		return uc.repo.Update(ctx, existente)
	}
	return uc.repo.Create(ctx, &entity.Docente{
		ID:        uuid.New().String(),
		Codigo:    codigo,
		RFC:       rfc,
		Nombre:    fila.Nombre,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func toDocenteResponse(d *entity.Docente) *dto.DocenteResponse {
	if d == nil {
		return nil
	}
	return &dto.DocenteResponse{
		ID:        d.ID,
		Codigo:    d.Codigo,
		RFC:       d.RFC,
		Nombre:    d.Nombre,
		Activo:    d.Activo,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
