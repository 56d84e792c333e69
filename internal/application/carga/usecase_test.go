package carga_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisacad/nomina-docentes-api/internal/application/carga"
	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain"
	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeDocentes struct {
	porCodigo map[string]*entity.Docente
}

func (f *fakeDocentes) Create(ctx context.Context, d *entity.Docente) error { return nil }
func (f *fakeDocentes) GetByID(ctx context.Context, id string) (*entity.Docente, error) {
	return nil, nil
}
func (f *fakeDocentes) GetByCodigo(ctx context.Context, codigo string) (*entity.Docente, error) {
	return f.porCodigo[codigo], nil
}
func (f *fakeDocentes) Update(ctx context.Context, d *entity.Docente) error { return nil }
func (f *fakeDocentes) List(ctx context.Context, query string, limit, offset int) ([]*entity.Docente, int, error) {
	return nil, 0, nil
}
func (f *fakeDocentes) TieneCargas(ctx context.Context, id string) (bool, error) { return false, nil }
func (f *fakeDocentes) Delete(ctx context.Context, id string) error             { return nil }

type fakePeriodos struct {
	porID map[string]*entity.Periodo
}

func (f *fakePeriodos) Create(ctx context.Context, p *entity.Periodo) error { return nil }
func (f *fakePeriodos) GetByID(ctx context.Context, id string) (*entity.Periodo, error) {
	return f.porID[id], nil
}
func (f *fakePeriodos) GetByNombre(ctx context.Context, nombre string) (*entity.Periodo, error) {
	return nil, nil
}
func (f *fakePeriodos) GetAbierto(ctx context.Context) (*entity.Periodo, error) { return nil, nil }
func (f *fakePeriodos) Update(ctx context.Context, p *entity.Periodo) error { return nil }
func (f *fakePeriodos) UpdateEstado(ctx context.Context, id, estado string) error {
	return nil
}
func (f *fakePeriodos) List(ctx context.Context) ([]*entity.Periodo, error) { return nil, nil }
func (f *fakePeriodos) ListByEstado(ctx context.Context, estado string) ([]*entity.Periodo, error) {
	return nil, nil
}

type fakeAreas struct {
	porID map[string]*entity.Area
}

func (f *fakeAreas) Create(ctx context.Context, a *entity.Area) error { return nil }
func (f *fakeAreas) GetByID(ctx context.Context, id string) (*entity.Area, error) {
	return f.porID[id], nil
}
func (f *fakeAreas) GetByNombre(ctx context.Context, nombre string) (*entity.Area, error) {
	return nil, nil
}
func (f *fakeAreas) Update(ctx context.Context, a *entity.Area) error { return nil }
func (f *fakeAreas) List(ctx context.Context, query string, limit, offset int) ([]*entity.Area, int, error) {
	return nil, 0, nil
}
func (f *fakeAreas) ListActivas(ctx context.Context) ([]*entity.Area, error)      { return nil, nil }
func (f *fakeAreas) TieneReferencias(ctx context.Context, id string) (bool, error) { return false, nil }
func (f *fakeAreas) Delete(ctx context.Context, id string) error                  { return nil }

type fakeCoords struct {
	asignaciones map[string]bool // areaID|usuarioID
}

func (f *fakeCoords) Asignar(ctx context.Context, ca *entity.CoordArea) error { return nil }
func (f *fakeCoords) Quitar(ctx context.Context, areaID, usuarioID string) error {
	return nil
}
func (f *fakeCoords) ListByArea(ctx context.Context, areaID string) ([]*entity.CoordArea, error) {
	return nil, nil
}
func (f *fakeCoords) ListAreasByUsuario(ctx context.Context, usuarioID string) ([]string, error) {
	return nil, nil
}
func (f *fakeCoords) EsCoordinador(ctx context.Context, areaID, usuarioID string) (bool, error) {
	return f.asignaciones[areaID+"|"+usuarioID], nil
}

type fakeCargas struct {
	porID    map[string]*entity.CargaHoras
	porClave map[string]*entity.CargaHoras
	inserts  int
	updates  int
}

func clave(docenteID, periodoID, areaID, materia string) string {
	return docenteID + "|" + periodoID + "|" + areaID + "|" + materia
}

func (f *fakeCargas) GetByID(ctx context.Context, id string) (*entity.CargaHoras, error) {
	return f.porID[id], nil
}
func (f *fakeCargas) ListByDocente(ctx context.Context, docenteID, periodoID, areaID string) ([]*entity.CargaHoras, error) {
	var out []*entity.CargaHoras
	for _, c := range f.porID {
		if c.DocenteID == docenteID && c.PeriodoID == periodoID && c.AreaID == areaID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCargas) Insert(ctx context.Context, c *entity.CargaHoras) error {
	f.inserts++
	f.porID[c.ID] = c
	f.porClave[clave(c.DocenteID, c.PeriodoID, c.AreaID, c.Materia)] = c
	return nil
}
func (f *fakeCargas) Update(ctx context.Context, c *entity.CargaHoras) error {
	f.updates++
	f.porID[c.ID] = c
	f.porClave[clave(c.DocenteID, c.PeriodoID, c.AreaID, c.Materia)] = c
	return nil
}
func (f *fakeCargas) Delete(ctx context.Context, id string) error {
	delete(f.porID, id)
	return nil
}
func (f *fakeCargas) ListByPeriodo(ctx context.Context, periodoID, areaID string) ([]*entity.CargaHoras, error) {
	return nil, nil
}

type fakeAuditoria struct {
	entradas []*entity.Auditoria
}

func (f *fakeAuditoria) Insert(ctx context.Context, e *entity.Auditoria) error {
	f.entradas = append(f.entradas, e)
	return nil
}

type fakePagos struct{}

func (f *fakePagos) ListDetalle(ctx context.Context, periodoID, areaID, query string, limit, offset int) ([]*repository.CargaDetalle, int, error) {
	return nil, 0, nil
}
func (f *fakePagos) ListDetallePeriodo(ctx context.Context, periodoID, areaID string) ([]*repository.CargaDetalle, error) {
	return nil, nil
}

// fakeTx ejecuta el callback sin transacción real, sobre los mismos fakes.
type fakeTx struct {
	cargas    *fakeCargas
	auditoria *fakeAuditoria
}

func (f *fakeTx) Run(ctx context.Context, fn func(repository.CargaHorasRepository, repository.AuditoriaRepository) error) error {
	return fn(f.cargas, f.auditoria)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

const (
	periodoAbierto = "per-1"
	areaSistemas   = "area-1"
	coordID        = "coord-1"
)

type escenario struct {
	uc        *carga.UseCase
	cargas    *fakeCargas
	periodos  *fakePeriodos
	auditoria *fakeAuditoria
}

func nuevoEscenario(t *testing.T) *escenario {
	t.Helper()
	docentes := &fakeDocentes{porCodigo: map[string]*entity.Docente{
		"000123": {ID: "doc-1", Codigo: "000123", Nombre: "Pérez López Juan", Activo: true},
		"000456": {ID: "doc-2", Codigo: "000456", Nombre: "García Ruiz Ana", Activo: true},
	}}
	periodos := &fakePeriodos{porID: map[string]*entity.Periodo{
		periodoAbierto: {ID: periodoAbierto, Nombre: "2026-1", Estado: entity.EstadoOpen},
		"per-draft":    {ID: "per-draft", Nombre: "2026-2", Estado: entity.EstadoDraft},
	}}
	areas := &fakeAreas{porID: map[string]*entity.Area{
		areaSistemas: {ID: areaSistemas, Nombre: "Sistemas", Activo: true},
	}}
	coords := &fakeCoords{asignaciones: map[string]bool{
		areaSistemas + "|" + coordID: true,
	}}
	cargas := &fakeCargas{porID: map[string]*entity.CargaHoras{}, porClave: map[string]*entity.CargaHoras{}}
	auditoria := &fakeAuditoria{}
	uc := carga.NewUseCase(
		docentes, periodos, areas, coords, cargas, &fakePagos{}, auditoria,
		&fakeTx{cargas: cargas, auditoria: auditoria},
	)
	return &escenario{uc: uc, cargas: cargas, periodos: periodos, auditoria: auditoria}
}

func actorCoord() carga.Actor {
	return carga.Actor{ID: coordID, Roles: []string{entity.RolCoord}}
}

func lote(filas ...dto.CargaRow) dto.ProcesarLoteRequest {
	return dto.ProcesarLoteRequest{PeriodoID: periodoAbierto, AreaID: areaSistemas, Filas: filas}
}

// ──────────────────────────────────────────────────────────────────────────────
// Procesar (vista previa)
// ──────────────────────────────────────────────────────────────────────────────

func TestProcesar_FilasValidasYErroresConviven(t *testing.T) {
	e := nuevoEscenario(t)

	out, err := e.uc.Procesar(context.Background(), actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra", Horas: 4, Tarifa: 350, Pagable: "SI"},
		dto.CargaRow{Linea: 3, Codigo: "999999", Materia: "Cálculo", Horas: 2, Tarifa: 300, Pagable: "SI"},
		dto.CargaRow{Linea: 4, Codigo: "000456", Materia: "Física", Horas: 0, Tarifa: 300, Pagable: "SI"},
	))
	require.NoError(t, err, "las filas inválidas no deben abortar el lote")

	assert.Equal(t, 1, out.Registradas)
	assert.Equal(t, 2, out.Fallidas)
	require.Len(t, out.Errores, 2)
	assert.Equal(t, 3, out.Errores[0].Linea)
	assert.Contains(t, out.Errores[0].Motivo, "docente no encontrado")
	assert.Equal(t, 4, out.Errores[1].Linea)

	// vista previa: nada se persiste
	assert.Zero(t, e.cargas.inserts)
	assert.Empty(t, e.auditoria.entradas)
}

func TestProcesar_CodigoSinCerosSeNormaliza(t *testing.T) {
	e := nuevoEscenario(t)

	out, err := e.uc.Procesar(context.Background(), actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "123", Materia: "Álgebra", Horas: 4, Tarifa: 350, Pagable: 1},
	))
	require.NoError(t, err)
	require.Len(t, out.Validas, 1)
	assert.Equal(t, "000123", out.Validas[0].DocenteCodigo)
}

func TestProcesar_DuplicadoEnLote_PrimeraGana(t *testing.T) {
	e := nuevoEscenario(t)

	out, err := e.uc.Procesar(context.Background(), actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra Lineal", Horas: 4, Tarifa: 350, Pagable: "SI"},
		// misma materia plegada (acentos y mayúsculas no distinguen)
		dto.CargaRow{Linea: 3, Codigo: "000123", Materia: "ALGEBRA LINEAL", Horas: 9, Tarifa: 999, Pagable: "SI"},
	))
	require.NoError(t, err)

	require.Len(t, out.Validas, 1)
	assert.Equal(t, 2, out.Validas[0].Linea, "la primera aparición gana")
	require.Len(t, out.Errores, 1)
	assert.Equal(t, 3, out.Errores[0].Linea)
	assert.Contains(t, out.Errores[0].Motivo, "duplicada")
}

func TestProcesar_NoPagableFuerzaTarifaCero(t *testing.T) {
	e := nuevoEscenario(t)

	out, err := e.uc.Procesar(context.Background(), actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Tutorías", Horas: 3, Tarifa: 500, Pagable: "NO"},
	))
	require.NoError(t, err)
	require.Len(t, out.Validas, 1)

	v := out.Validas[0]
	assert.False(t, v.Pagable)
	assert.True(t, v.Tarifa.IsZero(), "tarifa enviada se ignora cuando no es pagable")
	assert.True(t, v.Importe.IsZero())
}

func TestProcesar_PeriodoNoAbierto_Retorna409(t *testing.T) {
	e := nuevoEscenario(t)

	in := lote(dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra", Horas: 4, Tarifa: 350, Pagable: 1})
	in.PeriodoID = "per-draft"

	_, err := e.uc.Procesar(context.Background(), actorCoord(), in)
	var estadoErr *domain.EstadoInvalidoError
	require.ErrorAs(t, err, &estadoErr)
	assert.Equal(t, entity.EstadoDraft, estadoErr.Actual)
	assert.Equal(t, entity.EstadoOpen, estadoErr.Esperado)
}

func TestProcesar_CoordNoAsignado_Forbidden(t *testing.T) {
	e := nuevoEscenario(t)

	otro := carga.Actor{ID: "coord-ajeno", Roles: []string{entity.RolCoord}}
	_, err := e.uc.Procesar(context.Background(), otro, lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra", Horas: 4, Tarifa: 350, Pagable: 1},
	))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProcesar_AdminSinRolCoord_Forbidden(t *testing.T) {
	e := nuevoEscenario(t)

	admin := carga.Actor{ID: "admin-1", Roles: []string{entity.RolAdmin}}
	_, err := e.uc.Procesar(context.Background(), admin, lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra", Horas: 4, Tarifa: 350, Pagable: 1},
	))
	assert.ErrorIs(t, err, domain.ErrForbidden, "los lotes son exclusivos de coordinadores")
}

// ──────────────────────────────────────────────────────────────────────────────
// Confirmar (persistencia)
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmar_InsertaYAuditaUnaVezPorLote(t *testing.T) {
	e := nuevoEscenario(t)

	out, err := e.uc.Confirmar(context.Background(), actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra", Horas: 4, Tarifa: 350, Pagable: "SI"},
		dto.CargaRow{Linea: 3, Codigo: "000456", Materia: "Física", Horas: 2, Tarifa: 300, Pagable: "SI"},
		dto.CargaRow{Linea: 4, Codigo: "999999", Materia: "Cálculo", Horas: 2, Tarifa: 300, Pagable: "SI"},
	))
	require.NoError(t, err)

	assert.Equal(t, 2, out.Registradas)
	assert.Equal(t, 1, out.Fallidas)
	assert.Equal(t, 2, e.cargas.inserts)
	assert.Zero(t, e.cargas.updates)

	// una sola entrada de auditoría por lote, con los contadores
	require.Len(t, e.auditoria.entradas, 1)
	entrada := e.auditoria.entradas[0]
	assert.Equal(t, "carga.confirmar_lote", entrada.Accion)
	assert.Equal(t, coordID, entrada.ActorID)
	assert.Contains(t, string(entrada.Payload), `"registradas":2`)
	assert.Contains(t, string(entrada.Payload), `"fallidas":1`)
}

func TestConfirmar_ReenvioActualizaEIncrementaVersion(t *testing.T) {
	e := nuevoEscenario(t)
	ctx := context.Background()

	_, err := e.uc.Confirmar(ctx, actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra", Horas: 4, Tarifa: 350, Pagable: "SI"},
	))
	require.NoError(t, err)

	// reenvío de la misma clave natural con otros valores
	_, err = e.uc.Confirmar(ctx, actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra", Horas: 6, Tarifa: 400, Pagable: "SI"},
	))
	require.NoError(t, err)

	assert.Equal(t, 1, e.cargas.inserts, "la misma clave natural no duplica")
	assert.Equal(t, 1, e.cargas.updates)

	guardada := e.cargas.porClave[clave("doc-1", periodoAbierto, areaSistemas, "Álgebra")]
	require.NotNil(t, guardada)
	assert.Equal(t, 2, guardada.Version)
	assert.True(t, guardada.Horas.Equal(decimal.NewFromInt(6)))
	assert.True(t, guardada.Tarifa.Equal(decimal.NewFromInt(400)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_CoordSoloEnSusAreas(t *testing.T) {
	e := nuevoEscenario(t)
	ctx := context.Background()

	_, err := e.uc.Confirmar(ctx, actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra", Horas: 4, Tarifa: 350, Pagable: 1},
	))
	require.NoError(t, err)

	var id string
	for cid := range e.cargas.porID {
		id = cid
	}
	require.NotEmpty(t, id)

	otro := carga.Actor{ID: "coord-ajeno", Roles: []string{entity.RolCoord}}
	err = e.uc.Delete(ctx, otro, id)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, e.uc.Delete(ctx, actorCoord(), id))
	assert.Empty(t, e.cargas.porID)
}

func TestDelete_AdminBorraCualquiera(t *testing.T) {
	e := nuevoEscenario(t)
	ctx := context.Background()

	_, err := e.uc.Confirmar(ctx, actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra", Horas: 4, Tarifa: 350, Pagable: 1},
	))
	require.NoError(t, err)

	var id string
	for cid := range e.cargas.porID {
		id = cid
	}
	admin := carga.Actor{ID: "admin-1", Roles: []string{entity.RolAdmin}}
	require.NoError(t, e.uc.Delete(ctx, admin, id))
}

func TestDelete_NoExiste_NotFound(t *testing.T) {
	e := nuevoEscenario(t)
	err := e.uc.Delete(context.Background(), actorCoord(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un reenvío de la misma materia con otra capitalización o acentuación
// debe actualizar la carga existente, no crear una segunda fila; la
// ortografía del primer envío se conserva.
func TestConfirmar_ReenvioConOtraOrtografiaActualiza(t *testing.T) {
	e := nuevoEscenario(t)
	ctx := context.Background()

	_, err := e.uc.Confirmar(ctx, actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra", Horas: 4, Tarifa: 350, Pagable: 1},
	))
	require.NoError(t, err)

	_, err = e.uc.Confirmar(ctx, actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "ALGEBRA", Horas: 6, Tarifa: 400, Pagable: 1},
	))
	require.NoError(t, err)

	assert.Equal(t, 1, e.cargas.inserts)
	assert.Equal(t, 1, e.cargas.updates)

	guardada := e.cargas.porClave[clave("doc-1", periodoAbierto, areaSistemas, "Álgebra")]
	require.NotNil(t, guardada)
	assert.Equal(t, "Álgebra", guardada.Materia)
	assert.Equal(t, 2, guardada.Version)
	assert.True(t, guardada.Horas.Equal(decimal.NewFromInt(6)))
}

// Con el periodo ya cerrado un COORD no puede borrar cargas; ADMIN sí.
func TestDelete_CoordConPeriodoCerrado(t *testing.T) {
	e := nuevoEscenario(t)
	ctx := context.Background()

	_, err := e.uc.Confirmar(ctx, actorCoord(), lote(
		dto.CargaRow{Linea: 2, Codigo: "000123", Materia: "Álgebra", Horas: 4, Tarifa: 350, Pagable: 1},
	))
	require.NoError(t, err)

	var id string
	for cid := range e.cargas.porID {
		id = cid
	}
	require.NotEmpty(t, id)

	e.periodos.porID[periodoAbierto].Estado = entity.EstadoClosed

	err = e.uc.Delete(ctx, actorCoord(), id)
	var estadoErr *domain.EstadoInvalidoError
	require.ErrorAs(t, err, &estadoErr)
	assert.Equal(t, entity.EstadoClosed, estadoErr.Actual)

	admin := carga.Actor{ID: "admin-1", Roles: []string{entity.RolAdmin}}
	require.NoError(t, e.uc.Delete(ctx, admin, id))
}
