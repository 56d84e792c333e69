// Package periodo implementa el ciclo de vida de los periodos de nómina:
// DRAFT → OPEN → CLOSED → REPORTED, con la invariante de a lo sumo un
// periodo abierto en todo el sistema.
package periodo

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

const fechaLayout = "2006-01-02"

// UseCase gestor del ciclo de vida de periodos.
type UseCase struct {
	repo      repository.PeriodoRepository
	auditoria repository.AuditoriaRepository
}

// NewUseCase construye el gestor de periodos.
func NewUseCase(repo repository.PeriodoRepository, auditoria repository.AuditoriaRepository) *UseCase {
	return &UseCase{repo: repo, auditoria: auditoria}
}

// Create crea un periodo en estado DRAFT. Falla con nombre repetido o
// con inicio posterior al fin.
func (uc *UseCase) Create(ctx context.Context, actorID string, in dto.CreatePeriodoRequest) (*dto.PeriodoResponse, error) {
	inicio, err := time.Parse(fechaLayout, in.Inicio)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	fin, err := time.Parse(fechaLayout, in.Fin)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if inicio.After(fin) {
		return nil, domain.ErrInvalidDateRange
	}
	existente, err := uc.repo.GetByNombre(ctx, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrNombreAlreadyExists
	}
	now := time.Now()
	p := &entity.Periodo{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Inicio:    inicio,
		Fin:       fin,
		Estado:    entity.EstadoDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "periodo.crear", "periodo", p.ID,
		map[string]string{"nombre": p.Nombre})
	return toPeriodoResponse(p), nil
}

// Update corrige nombre o fechas de un periodo. Solo se permite mientras
// el periodo sigue en DRAFT; con nóminas ya capturadas los datos quedan
// congelados.
func (uc *UseCase) Update(ctx context.Context, actorID, id string, in dto.UpdatePeriodoRequest) (*dto.PeriodoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Estado != entity.EstadoDraft {
		return nil, &domain.EstadoInvalidoError{PeriodoID: id, Actual: p.Estado, Esperado: entity.EstadoDraft}
	}
	if in.Nombre != "" && in.Nombre != p.Nombre {
		existente, err := uc.repo.GetByNombre(ctx, in.Nombre)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrNombreAlreadyExists
		}
		p.Nombre = in.Nombre
	}
	if in.Inicio != "" {
		inicio, err := time.Parse(fechaLayout, in.Inicio)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		p.Inicio = inicio
	}
	if in.Fin != "" {
		fin, err := time.Parse(fechaLayout, in.Fin)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		p.Fin = fin
	}
	if p.Inicio.After(p.Fin) {
		return nil, domain.ErrInvalidDateRange
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, "periodo.actualizar", "periodo", p.ID,
		map[string]string{"nombre": p.Nombre})
	p.UpdatedAt = time.Now()
	return toPeriodoResponse(p), nil
}

// Abrir pasa un periodo de DRAFT a OPEN. Si otro periodo ya está abierto,
// falla nombrando al conflictivo.
func (uc *UseCase) Abrir(ctx context.Context, actorID, id string) (*dto.PeriodoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Estado != entity.EstadoDraft {
		return nil, &domain.EstadoInvalidoError{PeriodoID: id, Actual: p.Estado, Esperado: entity.EstadoDraft}
	}
	abierto, err := uc.repo.GetAbierto(ctx)
	if err != nil {
		return nil, err
	}
	if abierto != nil {
		return nil, &domain.PeriodoAbiertoError{NombreAbierto: abierto.Nombre}
	}
	return uc.transicionar(ctx, actorID, p, entity.EstadoOpen, "periodo.abrir")
}

// Cerrar pasa un periodo de OPEN a CLOSED.
func (uc *UseCase) Cerrar(ctx context.Context, actorID, id string) (*dto.PeriodoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Estado != entity.EstadoOpen {
		return nil, &domain.EstadoInvalidoError{PeriodoID: id, Actual: p.Estado, Esperado: entity.EstadoOpen}
	}
	return uc.transicionar(ctx, actorID, p, entity.EstadoClosed, "periodo.cerrar")
}

// Reportar pasa un periodo de CLOSED a REPORTED.
func (uc *UseCase) Reportar(ctx context.Context, actorID, id string) (*dto.PeriodoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Estado != entity.EstadoClosed {
		return nil, &domain.EstadoInvalidoError{PeriodoID: id, Actual: p.Estado, Esperado: entity.EstadoClosed}
	}
	return uc.transicionar(ctx, actorID, p, entity.EstadoReported, "periodo.reportar")
}

func (uc *UseCase) transicionar(ctx context.Context, actorID string, p *entity.Periodo, estado, accion string) (*dto.PeriodoResponse, error) {
	if err := uc.repo.UpdateEstado(ctx, p.ID, estado); err != nil {
		return nil, err
	}
	audit.Registrar(ctx, uc.auditoria, actorID, accion, "periodo", p.ID,
		map[string]string{"de": p.Estado, "a": estado})
	p.Estado = estado
	p.UpdatedAt = time.Now()
	return toPeriodoResponse(p), nil
}

// GetByID busca un periodo por id.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.PeriodoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPeriodoResponse(p), nil
}

// List devuelve los periodos visibles para el llamador: un COORD solo ve
// los abiertos; el resto de roles ve todos. Filtro de lectura, no parte
// de la máquina de estados.
func (uc *UseCase) List(ctx context.Context, soloAbiertos bool) (*dto.PeriodoListResponse, error) {
	var (
		periodos []*entity.Periodo
		err      error
	)
	if soloAbiertos {
		periodos, err = uc.repo.ListByEstado(ctx, entity.EstadoOpen)
	} else {
		periodos, err = uc.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.PeriodoResponse, 0, len(periodos))
	for _, p := range periodos {
		items = append(items, *toPeriodoResponse(p))
	}
	return &dto.PeriodoListResponse{Items: items}, nil
}

func toPeriodoResponse(p *entity.Periodo) *dto.PeriodoResponse {
	if p == nil {
		return nil
	}
	return &dto.PeriodoResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Inicio:    p.Inicio.Format(fechaLayout),
		Fin:       p.Fin.Format(fechaLayout),
		Estado:    p.Estado,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
