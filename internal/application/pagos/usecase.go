// Package pagos implementa el agregador de reportes de nómina: listado
// plano paginado, pivote docentes × áreas y los exportes XLSX/ZIP/PDF.
package pagos

import (
	"context"
	"sort"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

// UseCase agregador de reportes de pagos.
type UseCase struct {
	pagos    repository.PagosRepository
	periodos repository.PeriodoRepository
	areas    repository.AreaRepository
	excel    ExcelGenerator
	pdf      PDFGenerator
}

// NewUseCase construye el agregador.
func NewUseCase(
	pagos repository.PagosRepository,
	periodos repository.PeriodoRepository,
	areas repository.AreaRepository,
	excel ExcelGenerator,
	pdf PDFGenerator,
) *UseCase {
	return &UseCase{pagos: pagos, periodos: periodos, areas: areas, excel: excel, pdf: pdf}
}

// Reporte devuelve el listado plano paginado de cargas del periodo, con
// búsqueda por nombre de docente o materia.
func (uc *UseCase) Reporte(ctx context.Context, in dto.ReportePagosRequest) (*dto.CargaListResponse, error) {
	if in.PeriodoID == "" {
		return nil, domain.ErrInvalidInput
	}
	in.DefaultPage()
	detalles, total, err := uc.pagos.ListDetalle(ctx, in.PeriodoID, in.AreaID, in.Query, in.Limit(), in.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CargaResponse, 0, len(detalles))
	for _, d := range detalles {
		items = append(items, dto.CargaResponse{
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
		})
	}
	return &dto.CargaListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: in.Page, PageSize: in.PageSize, Total: total},
	}, nil
}

// Pivote construye la matriz docentes × áreas del periodo.
func (uc *UseCase) Pivote(ctx context.Context, periodoID string) (*dto.PivoteResponse, error) {
	_, detalles, err := uc.cargarPeriodo(ctx, periodoID)
	if err != nil {
		return nil, err
	}
	activas, err := uc.areas.ListActivas(ctx)
	if err != nil {
		return nil, err
	}
	return BuildPivote(periodoID, detalles, activas), nil
}

// ExportarExcel genera el XLSX del pivote del periodo.
func (uc *UseCase) ExportarExcel(ctx context.Context, periodoID string) (nombre string, data []byte, err error) {
	nombrePeriodo, detalles, err := uc.cargarPeriodo(ctx, periodoID)
	if err != nil {
		return "", nil, err
	}
	activas, err := uc.areas.ListActivas(ctx)
	if err != nil {
		return "", nil, err
	}
	piv := BuildPivote(periodoID, detalles, activas)
	data, err = uc.excel.GenerarPivote(nombrePeriodo, piv)
	if err != nil {
		return "", nil, err
	}
	return "reporte-" + nombrePeriodo + ".xlsx", data, nil
}

// ExportarAreasZip genera un ZIP con un XLSX de detalle por área.
func (uc *UseCase) ExportarAreasZip(ctx context.Context, periodoID string) (nombre string, data []byte, err error) {
	nombrePeriodo, grupos, err := uc.agruparPorArea(ctx, periodoID)
	if err != nil {
		return "", nil, err
	}
	data, err = uc.excel.GenerarAreasZip(nombrePeriodo, grupos)
	if err != nil {
		return "", nil, err
	}
	return "areas-" + nombrePeriodo + ".zip", data, nil
}

// ExportarAreasMultihojas genera un único XLSX con una hoja por área.
func (uc *UseCase) ExportarAreasMultihojas(ctx context.Context, periodoID string) (nombre string, data []byte, err error) {
	nombrePeriodo, grupos, err := uc.agruparPorArea(ctx, periodoID)
	if err != nil {
		return "", nil, err
	}
	data, err = uc.excel.GenerarAreasMultihojas(nombrePeriodo, grupos)
	if err != nil {
		return "", nil, err
	}
	return "areas-" + nombrePeriodo + ".xlsx", data, nil
}

// ExportarPDF genera la representación PDF del pivote.
func (uc *UseCase) ExportarPDF(ctx context.Context, periodoID string) (nombre string, data []byte, err error) {
	nombrePeriodo, detalles, err := uc.cargarPeriodo(ctx, periodoID)
	if err != nil {
		return "", nil, err
	}
	activas, err := uc.areas.ListActivas(ctx)
	if err != nil {
		return "", nil, err
	}
	piv := BuildPivote(periodoID, detalles, activas)
	data, err = uc.pdf.GenerarPivote(nombrePeriodo, piv)
	if err != nil {
		return "", nil, err
	}
	return "reporte-" + nombrePeriodo + ".pdf", data, nil
}

func (uc *UseCase) cargarPeriodo(ctx context.Context, periodoID string) (string, []*repository.CargaDetalle, error) {
	p, err := uc.periodos.GetByID(ctx, periodoID)
	if err != nil {
		return "", nil, err
	}
	if p == nil {
		return "", nil, domain.ErrNotFound
	}
	detalles, err := uc.pagos.ListDetallePeriodo(ctx, periodoID, "")
	if err != nil {
		return "", nil, err
	}
	return p.Nombre, detalles, nil
}

// agruparPorArea agrupa el detalle del periodo por área, ordenando las
// áreas por nombre y las filas por docente y materia.
func (uc *UseCase) agruparPorArea(ctx context.Context, periodoID string) (string, []AreaDetalle, error) {
	nombrePeriodo, detalles, err := uc.cargarPeriodo(ctx, periodoID)
	if err != nil {
		return "", nil, err
	}
	porArea := map[string]*AreaDetalle{}
	for _, d := range detalles {
		g := porArea[d.Carga.AreaID]
		if g == nil {
			g = &AreaDetalle{AreaID: d.Carga.AreaID, AreaNombre: d.AreaNombre}
			porArea[d.Carga.AreaID] = g
		}
		g.Filas = append(g.Filas, d)
	}
	grupos := make([]AreaDetalle, 0, len(porArea))
	for _, g := range porArea {
		sort.Slice(g.Filas, func(i, j int) bool {
			if g.Filas[i].DocenteNombre != g.Filas[j].DocenteNombre {
				return g.Filas[i].DocenteNombre < g.Filas[j].DocenteNombre
			}
			return g.Filas[i].Carga.Materia < g.Filas[j].Carga.Materia
		})
		grupos = append(grupos, *g)
	}
	sort.Slice(grupos, func(i, j int) bool { return grupos[i].AreaNombre < grupos[j].AreaNombre })
	return nombrePeriodo, grupos, nil
}
