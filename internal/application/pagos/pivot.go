package pagos

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
)

// BuildPivote agrupa las cargas del periodo por docente y por área y suma
// importes en una matriz: filas = docentes, columnas = áreas activas, más
// total por fila y fila de totales por columna. Se recalcula en cada
// petición; no hay cachés.
func BuildPivote(periodoID string, detalles []*repository.CargaDetalle, areas []*entity.Area) *dto.PivoteResponse {
	columnas := make([]dto.PivoteArea, 0, len(areas))
	colIdx := make(map[string]int, len(areas))
	for i, a := range areas {
		columnas = append(columnas, dto.PivoteArea{AreaID: a.ID, Nombre: a.Nombre})
		colIdx[a.ID] = i
	}

	type acumulado struct {
		codigo   string
		nombre   string
		importes []decimal.Decimal
		total    decimal.Decimal
	}
	porDocente := map[string]*acumulado{}

	for _, d := range detalles {
		idx, ok := colIdx[d.Carga.AreaID]
		if !ok {
			// cargas de áreas dadas de baja no tienen columna; se omiten del pivote
			continue
		}
		acc := porDocente[d.Carga.DocenteID]
		if acc == nil {
			acc = &acumulado{
				codigo:   d.DocenteCodigo,
				nombre:   d.DocenteNombre,
				importes: make([]decimal.Decimal, len(columnas)),
			}
			porDocente[d.Carga.DocenteID] = acc
		}
		acc.importes[idx] = acc.importes[idx].Add(d.Importe)
		acc.total = acc.total.Add(d.Importe)
	}

	filas := make([]dto.PivoteFila, 0, len(porDocente))
	for id, acc := range porDocente {
		filas = append(filas, dto.PivoteFila{
			DocenteID:     id,
			DocenteCodigo: acc.codigo,
			DocenteNombre: acc.nombre,
			Importes:      acc.importes,
			Total:         acc.total,
		})
	}
	sort.Slice(filas, func(i, j int) bool { return filas[i].DocenteNombre < filas[j].DocenteNombre })

	totales := make([]decimal.Decimal, len(columnas))
	granTotal := decimal.Zero
	for _, f := range filas {
		for i, imp := range f.Importes {
			totales[i] = totales[i].Add(imp)
		}
		granTotal = granTotal.Add(f.Total)
	}

	return &dto.PivoteResponse{
		PeriodoID: periodoID,
		Areas:     columnas,
		Filas:     filas,
		Totales:   totales,
		GranTotal: granTotal,
	}
}
