// Package pdf implementa la generación del reporte de nómina en PDF con
// Maroto v2: la matriz docentes × áreas del periodo, con totales por
// columna y gran total.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/application/pagos"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Columnas de grilla disponibles para los importes; el bloque fijo
// código + docente ocupa las otras cuatro.
const colsImportes = 8

// MarotoPDFGenerator implementa pagos.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ pagos.PDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarPivote genera el PDF del pivote y devuelve sus bytes. Cuando las
// áreas no caben en la grilla de la página, el PDF omite el desglose por
// área y deja solo el total por docente; el XLSX conserva el desglose
// completo.
func (g *MarotoPDFGenerator) GenerarPivote(nombrePeriodo string, piv *dto.PivoteResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de nómina docente", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(nombrePeriodo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	desglose := len(piv.Areas)+1 <= colsImportes

	m.AddRows(tableHeaderRow(piv, desglose))
	for _, r := range detailRows(piv, desglose) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(piv, desglose))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(nombrePeriodo string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE NÓMINA DOCENTE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Periodo: "+nombrePeriodo, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Importes por docente y área", props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

// anchos reparte la grilla de importes entre las columnas de área y el
// total; el total se queda con el sobrante.
func anchos(numAreas int, desglose bool) (area, total int) {
	if !desglose || numAreas == 0 {
		return 0, colsImportes
	}
	area = colsImportes / (numAreas + 1)
	if area < 1 {
		area = 1
	}
	total = colsImportes - numAreas*area
	return area, total
}

func tableHeaderRow(piv *dto.PivoteResponse, desglose bool) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}

	wArea, wTotal := anchos(len(piv.Areas), desglose)
	cols := []core.Col{
		h("Código", 1, align.Left),
		h("Docente", 3, align.Left),
	}
	if desglose {
		for _, a := range piv.Areas {
			cols = append(cols, h(a.Nombre, wArea, align.Right))
		}
	}
	cols = append(cols, h("Total", wTotal, align.Right))
	return row.New(8).Add(cols...)
}

func detailRows(piv *dto.PivoteResponse, desglose bool) []core.Row {
	wArea, wTotal := anchos(len(piv.Areas), desglose)
	result := make([]core.Row, 0, len(piv.Filas))
	for _, f := range piv.Filas {
		cols := []core.Col{
			col.New(1).Add(text.New(f.DocenteCodigo, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(f.DocenteNombre, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
		}
		if desglose {
			for _, imp := range f.Importes {
				cols = append(cols, celdaImporte(imp, wArea, false))
			}
		}
		cols = append(cols, celdaImporte(f.Total, wTotal, true))
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

func totalsRow(piv *dto.PivoteResponse, desglose bool) core.Row {
	wArea, wTotal := anchos(len(piv.Areas), desglose)
	cols := []core.Col{
		col.New(1),
		col.New(3).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Left: 1,
		})),
	}
	if desglose {
		for _, t := range piv.Totales {
			cols = append(cols, celdaImporte(t, wArea, true))
		}
	}
	cols = append(cols, col.New(wTotal).Add(text.New("$"+piv.GranTotal.StringFixed(2), props.Text{
		Style: fontstyle.Bold, Size: 9, Align: align.Right,
		Color: colorPrimary, Top: 1, Right: 1,
	})))
	return row.New(8).Add(cols...)
}

func celdaImporte(d decimal.Decimal, ancho int, negrita bool) core.Col {
	estilo := fontstyle.Normal
	if negrita {
		estilo = fontstyle.Bold
	}
	return col.New(ancho).Add(text.New("$"+d.StringFixed(2), props.Text{
		Style: estilo, Size: 8, Align: align.Right, Top: 1, Right: 1,
	}))
}
