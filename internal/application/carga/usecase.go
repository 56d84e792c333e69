// Package carga implementa el motor de conciliación de cargas de horas:
// valida y normaliza filas (de Excel o captura manual) y las upserta por
// clave natural (docente, periodo, área, materia) sin abortar el lote por
// errores de fila.
package carga

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain"
	docdom "github.com/sisacad/nomina-docentes-api/internal/domain/docente"
	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

// Actor identifica al llamador autenticado (claims del JWT).
type Actor struct {
	ID    string
	Roles []string
}

func (a Actor) tieneRol(rol string) bool {
	for _, r := range a.Roles {
		if r == rol {
			return true
		}
	}
	return false
}

// UseCase motor de conciliación de cargas de horas.
type UseCase struct {
	docentes  repository.DocenteRepository
	periodos  repository.PeriodoRepository
	areas     repository.AreaRepository
	coords    repository.CoordAreaRepository
	cargas    repository.CargaHorasRepository
	pagos     repository.PagosRepository
	auditoria repository.AuditoriaRepository
	tx        TxRunner
}

// NewUseCase construye el motor.
func NewUseCase(
	docentes repository.DocenteRepository,
	periodos repository.PeriodoRepository,
	areas repository.AreaRepository,
	coords repository.CoordAreaRepository,
	cargas repository.CargaHorasRepository,
	pagos repository.PagosRepository,
	auditoria repository.AuditoriaRepository,
	tx TxRunner,
) *UseCase {
	return &UseCase{
		docentes:  docentes,
		periodos:  periodos,
		areas:     areas,
		coords:    coords,
		cargas:    cargas,
		pagos:     pagos,
		auditoria: auditoria,
		tx:        tx,
	}
}

// autorizarLote verifica la precondición de cualquier operación de lote:
// rol COORD y asignación al área destino (vía CoordArea). El envío de
// lotes es exclusivo de coordinadores; ADMIN/RH no lo hacen.
func (uc *UseCase) autorizarLote(ctx context.Context, actor Actor, areaID string) error {
	if !actor.tieneRol(entity.RolCoord) {
		return domain.ErrForbidden
	}
	asignado, err := uc.coords.EsCoordinador(ctx, areaID, actor.ID)
	if err != nil {
		return err
	}
	if !asignado {
		return domain.ErrForbidden
	}
	return nil
}

// validarContexto comprueba que periodo y área existan y que el periodo
// esté abierto (solo se cargan horas contra el periodo OPEN).
func (uc *UseCase) validarContexto(ctx context.Context, periodoID, areaID string) error {
	p, err := uc.periodos.GetByID(ctx, periodoID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if p.Estado != entity.EstadoOpen {
		return &domain.EstadoInvalidoError{PeriodoID: periodoID, Actual: p.Estado, Esperado: entity.EstadoOpen}
	}
	a, err := uc.areas.GetByID(ctx, areaID)
	if err != nil {
		return err
	}
	if a == nil || !a.Activo {
		return domain.ErrNotFound
	}
	return nil
}

// validarFilas recorre las filas del lote acumulando válidas y errores.
// El chequeo de duplicados es local al lote: la primera aparición de
// (docente, materia) gana y las siguientes se rechazan; el lote siempre va
// dirigido a un solo (periodo, área), así que la clave corta no colisiona
// entre áreas.
func (uc *UseCase) validarFilas(ctx context.Context, filas []dto.CargaRow) ([]dto.CargaRowValidada, []dto.RowError) {
	var (
		validas []dto.CargaRowValidada
		errores []dto.RowError
		vistas  = map[string]bool{}
	)
	for _, fila := range filas {
		v, err := uc.validarFila(ctx, fila)
		if err != nil {
			errores = append(errores, dto.RowError{Linea: fila.Linea, Motivo: err.Error()})
			continue
		}
		clave := v.DocenteID + "|" + Plegar(v.Materia)
		if vistas[clave] {
			errores = append(errores, dto.RowError{
				Linea:  fila.Linea,
				Motivo: fmt.Sprintf("fila duplicada en el lote: %s / %s", v.DocenteCodigo, v.Materia),
			})
			continue
		}
		vistas[clave] = true
		validas = append(validas, *v)
	}
	return validas, errores
}

func (uc *UseCase) validarFila(ctx context.Context, fila dto.CargaRow) (*dto.CargaRowValidada, error) {
	codigo := docdom.NormalizarCodigo(fila.Codigo)
	doc, err := uc.docentes.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("docente no encontrado: %s", fila.Codigo)
	}
	materia := strings.TrimSpace(fila.Materia)
	if materia == "" {
		return nil, fmt.Errorf("materia vacía")
	}
	horas, err := ParseHoras(fila.Horas)
	if err != nil {
		return nil, err
	}
	tarifa, err := ParseTarifa(fila.Tarifa)
	if err != nil {
		return nil, err
	}
	pagable, err := ParsePagable(fila.Pagable)
	if err != nil {
		return nil, err
	}
	if !pagable {
		// no pagable: la tarifa se fuerza a 0 sin importar lo enviado
		tarifa = decimal.Zero
	}
	return &dto.CargaRowValidada{
		Linea:         fila.Linea,
		DocenteID:     doc.ID,
		DocenteCodigo: doc.Codigo,
		DocenteNombre: doc.Nombre,
		Materia:       materia,
		Horas:         horas,
		Tarifa:        tarifa,
		Pagable:       pagable,
		Importe:       horas.Mul(tarifa),
	}, nil
}

// Procesar valida un lote sin persistir nada (vista previa). El request
// nunca falla por filas inválidas: devuelve la lista de errores junto con
// las filas válidas.
func (uc *UseCase) Procesar(ctx context.Context, actor Actor, in dto.ProcesarLoteRequest) (*dto.ProcesarLoteResponse, error) {
	if err := uc.autorizarLote(ctx, actor, in.AreaID); err != nil {
		return nil, err
	}
	if err := uc.validarContexto(ctx, in.PeriodoID, in.AreaID); err != nil {
		return nil, err
	}
	validas, errores := uc.validarFilas(ctx, in.Filas)
	return &dto.ProcesarLoteResponse{
		Registradas: len(validas),
		Fallidas:    len(errores),
		Validas:     validas,
		Errores:     noNilErrores(errores),
	}, nil
}

// ProcesarIndividual valida una sola fila capturada a mano.
func (uc *UseCase) ProcesarIndividual(ctx context.Context, actor Actor, in dto.ProcesarIndividualRequest) (*dto.ProcesarLoteResponse, error) {
	return uc.Procesar(ctx, actor, dto.ProcesarLoteRequest{
		PeriodoID: in.PeriodoID,
		AreaID:    in.AreaID,
		Filas:     []dto.CargaRow{in.Fila},
	})
}

// Confirmar aplica el lote: valida y upserta las filas válidas dentro de
// una sola transacción. Los rechazos de fila no revierten las filas ya
// aplicadas en la misma pasada; la transacción protege solo contra fallos
// de almacenamiento. Una entrada de auditoría por lote con los contadores.
func (uc *UseCase) Confirmar(ctx context.Context, actor Actor, in dto.ProcesarLoteRequest) (*dto.ProcesarLoteResponse, error) {
	if err := uc.autorizarLote(ctx, actor, in.AreaID); err != nil {
		return nil, err
	}
	if err := uc.validarContexto(ctx, in.PeriodoID, in.AreaID); err != nil {
		return nil, err
	}
	validas, errores := uc.validarFilas(ctx, in.Filas)

	err := uc.tx.Run(ctx, func(cargaRepo repository.CargaHorasRepository, auditoriaRepo repository.AuditoriaRepository) error {
		for _, v := range validas {
			if err := upsertCarga(ctx, cargaRepo, actor.ID, in.PeriodoID, in.AreaID, v); err != nil {
				return err
			}
		}
		return insertarAuditoriaLote(ctx, auditoriaRepo, actor.ID, in.PeriodoID, in.AreaID, len(validas), len(errores))
	})
	if err != nil {
		return nil, err
	}

	return &dto.ProcesarLoteResponse{
		Registradas: len(validas),
		Fallidas:    len(errores),
		Validas:     validas,
		Errores:     noNilErrores(errores),
	}, nil
}

// upsertCarga busca la clave natural y actualiza (incrementando version y
// estampando al creador) o inserta según exista o no. La materia se
// compara plegada, igual que el duplicado local al lote, para que un
// reenvío con otra capitalización o acentuación actualice en vez de
// duplicar; la ortografía del primer envío se conserva.
func upsertCarga(ctx context.Context, repo repository.CargaHorasRepository, actorID, periodoID, areaID string, v dto.CargaRowValidada) error {
	cargas, err := repo.ListByDocente(ctx, v.DocenteID, periodoID, areaID)
	if err != nil {
		return err
	}
	var existente *entity.CargaHoras
	plegada := Plegar(v.Materia)
	for _, c := range cargas {
		if Plegar(c.Materia) == plegada {
			existente = c
			break
		}
	}
	now := time.Now()
	if existente != nil {
		existente.Horas = v.Horas
		existente.Tarifa = v.Tarifa
		existente.Pagable = v.Pagable
		existente.Version++
		existente.CreadorID = actorID
		existente.UpdatedAt = now
		return repo.Update(ctx, existente)
	}
	return repo.Insert(ctx, &entity.CargaHoras{
		ID:        uuid.New().String(),
		DocenteID: v.DocenteID,
		PeriodoID: periodoID,
		AreaID:    areaID,
		Materia:   v.Materia,
		Horas:     v.Horas,
		Tarifa:    v.Tarifa,
		Pagable:   v.Pagable,
		Version:   1,
		CreadorID: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func insertarAuditoriaLote(ctx context.Context, repo repository.AuditoriaRepository, actorID, periodoID, areaID string, registradas, fallidas int) error {
	payload := fmt.Sprintf(`{"periodo_id":%q,"area_id":%q,"registradas":%d,"fallidas":%d}`,
		periodoID, areaID, registradas, fallidas)
	return repo.Insert(ctx, &entity.Auditoria{
		ID:        uuid.New().String(),
		ActorID:   actorID,
		Accion:    "carga.confirmar_lote",
		Entidad:   "carga_horas",
		Payload:   []byte(payload),
		CreatedAt: time.Now(),
	})
}

// List lista cargas persistidas con campos de presentación. Lectura
// abierta a ADMIN/RH sin chequeo de área; un COORD ve lo que consulte,
// el router limita quién llega aquí.
func (uc *UseCase) List(ctx context.Context, periodoID, areaID string, page dto.PageRequest) (*dto.CargaListResponse, error) {
	page.DefaultPage()
	detalles, total, err := uc.pagos.ListDetalle(ctx, periodoID, areaID, page.Query, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CargaResponse, 0, len(detalles))
	for _, d := range detalles {
		items = append(items, toCargaResponse(d))
	}
	return &dto.CargaListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// Delete elimina una carga individual. ADMIN y RH borran cualquiera; un
// COORD solo cargas de sus áreas y mientras el periodo sigue abierto.
func (uc *UseCase) Delete(ctx context.Context, actor Actor, id string) error {
	c, err := uc.cargas.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if !actor.tieneRol(entity.RolAdmin) && !actor.tieneRol(entity.RolRH) {
		asignado, err := uc.coords.EsCoordinador(ctx, c.AreaID, actor.ID)
		if err != nil {
			return err
		}
		if !asignado {
			return domain.ErrForbidden
		}
		p, err := uc.periodos.GetByID(ctx, c.PeriodoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Estado != entity.EstadoOpen {
			return &domain.EstadoInvalidoError{PeriodoID: c.PeriodoID, Actual: p.Estado, Esperado: entity.EstadoOpen}
		}
	}
	if err := uc.cargas.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

func toCargaResponse(d *repository.CargaDetalle) dto.CargaResponse {
	return dto.CargaResponse{
		ID:            d.Carga.ID,
		DocenteID:     d.Carga.DocenteID,
		DocenteCodigo: d.DocenteCodigo,
		DocenteNombre: d.DocenteNombre,
		PeriodoID:     d.Carga.PeriodoID,
		AreaID:        d.Carga.AreaID,
		AreaNombre:    d.AreaNombre,
		Materia:       d.Carga.Materia,
		Horas:         d.Carga.Horas,
		Tarifa:        d.Carga.Tarifa,
		Pagable:       d.Carga.Pagable,
		Importe:       d.Importe,
		Version:       d.Carga.Version,
		CreatedAt:     d.Carga.CreatedAt,
		UpdatedAt:     d.Carga.UpdatedAt,
	}
}

func noNilErrores(errs []dto.RowError) []dto.RowError {
	if errs == nil {
		return []dto.RowError{}
	}
	return errs
}
