package excel

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/application/pagos"
)

// Generator implementa pagos.ExcelGenerator con excelize.
type Generator struct{}

var _ pagos.ExcelGenerator = (*Generator)(nil)

// NewGenerator crea el generador de reportes XLSX.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerarPivote produce el libro con la matriz docentes × áreas: una
// columna por área activa, total por docente y fila final de totales.
func (g *Generator) GenerarPivote(nombrePeriodo string, piv *dto.PivoteResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	hoja := "Resumen"
	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, fmt.Errorf("error al nombrar la hoja: %w", err)
	}
	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("error al crear el estilo: %w", err)
	}

	encabezados := []interface{}{"Código", "Docente"}
	for _, a := range piv.Areas {
		encabezados = append(encabezados, a.Nombre)
	}
	encabezados = append(encabezados, "Total")
	if err := escribirFila(f, hoja, 1, encabezados); err != nil {
		return nil, err
	}
	ultima, _ := excelize.CoordinatesToCellName(len(encabezados), 1)
	if err := f.SetCellStyle(hoja, "A1", ultima, negrita); err != nil {
		return nil, fmt.Errorf("error al aplicar estilo: %w", err)
	}

	fila := 2
	for _, r := range piv.Filas {
		valores := []interface{}{r.DocenteCodigo, r.DocenteNombre}
		for _, imp := range r.Importes {
			valores = append(valores, monto(imp))
		}
		valores = append(valores, monto(r.Total))
		if err := escribirFila(f, hoja, fila, valores); err != nil {
			return nil, err
		}
		fila++
	}

	totales := []interface{}{"", "TOTAL"}
	for _, t := range piv.Totales {
		totales = append(totales, monto(t))
	}
	totales = append(totales, monto(piv.GranTotal))
	if err := escribirFila(f, hoja, fila, totales); err != nil {
		return nil, err
	}
	inicio, _ := excelize.CoordinatesToCellName(1, fila)
	fin, _ := excelize.CoordinatesToCellName(len(totales), fila)
	if err := f.SetCellStyle(hoja, inicio, fin, negrita); err != nil {
		return nil, fmt.Errorf("error al aplicar estilo: %w", err)
	}

	if err := f.SetColWidth(hoja, "A", colLetra(len(encabezados)), 18); err != nil {
		return nil, fmt.Errorf("error al ajustar columnas: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error al serializar el reporte: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerarAreasMultihojas produce un solo libro con una hoja por área.
func (g *Generator) GenerarAreasMultihojas(nombrePeriodo string, areas []pagos.AreaDetalle) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, area := range areas {
		hoja := nombreHoja(area.AreaNombre, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", hoja); err != nil {
				return nil, fmt.Errorf("error al nombrar la hoja: %w", err)
			}
		} else {
			if _, err := f.NewSheet(hoja); err != nil {
				return nil, fmt.Errorf("error al crear la hoja %s: %w", hoja, err)
			}
		}
		if err := escribirHojaArea(f, hoja, area); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error al serializar el reporte: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerarAreasZip produce un ZIP con un libro independiente por área.
func (g *Generator) GenerarAreasZip(nombrePeriodo string, areas []pagos.AreaDetalle) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i, area := range areas {
		libro, err := libroArea(area, i)
		if err != nil {
			return nil, err
		}
		w, err := zw.Create(nombreArchivo(area.AreaNombre, i) + ".xlsx")
		if err != nil {
			return nil, fmt.Errorf("error al crear entrada del zip: %w", err)
		}
		if _, err := w.Write(libro); err != nil {
			return nil, fmt.Errorf("error al escribir entrada del zip: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("error al cerrar el zip: %w", err)
	}
	return buf.Bytes(), nil
}

func libroArea(area pagos.AreaDetalle, i int) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	hoja := nombreHoja(area.AreaNombre, i)
	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, fmt.Errorf("error al nombrar la hoja: %w", err)
	}
	if err := escribirHojaArea(f, hoja, area); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error al serializar el libro: %w", err)
	}
	return buf.Bytes(), nil
}

// escribirHojaArea escribe el detalle de un área: filas por docente y
// materia, subtotal por docente y total del área al final.
func escribirHojaArea(f *excelize.File, hoja string, area pagos.AreaDetalle) error {
	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("error al crear el estilo: %w", err)
	}

	if err := escribirFila(f, hoja, 1, []interface{}{"Código", "Docente", "Materia", "Horas", "Tarifa", "Importe"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(hoja, "A1", "F1", negrita); err != nil {
		return fmt.Errorf("error al aplicar estilo: %w", err)
	}

	fila := 2
	totalArea := decimal.Zero
	subtotal := decimal.Zero
	var docenteActual string

	cerrarSubtotal := func() error {
		if docenteActual == "" {
			return nil
		}
		valores := []interface{}{"", "Subtotal " + docenteActual, "", "", "", monto(subtotal)}
		if err := escribirFila(f, hoja, fila, valores); err != nil {
			return err
		}
		inicio, _ := excelize.CoordinatesToCellName(1, fila)
		fin, _ := excelize.CoordinatesToCellName(6, fila)
		if err := f.SetCellStyle(hoja, inicio, fin, negrita); err != nil {
			return fmt.Errorf("error al aplicar estilo: %w", err)
		}
		fila++
		subtotal = decimal.Zero
		return nil
	}

	for _, d := range area.Filas {
		if d.DocenteNombre != docenteActual {
			if err := cerrarSubtotal(); err != nil {
				return err
			}
			docenteActual = d.DocenteNombre
		}
		valores := []interface{}{
			d.DocenteCodigo,
			d.DocenteNombre,
			d.Carga.Materia,
			monto(d.Carga.Horas),
			monto(d.Carga.Tarifa),
			monto(d.Importe),
		}
		if err := escribirFila(f, hoja, fila, valores); err != nil {
			return err
		}
		fila++
		subtotal = subtotal.Add(d.Importe)
		totalArea = totalArea.Add(d.Importe)
	}
	if err := cerrarSubtotal(); err != nil {
		return err
	}

	if err := escribirFila(f, hoja, fila, []interface{}{"", "TOTAL " + area.AreaNombre, "", "", "", monto(totalArea)}); err != nil {
		return err
	}
	inicio, _ := excelize.CoordinatesToCellName(1, fila)
	fin, _ := excelize.CoordinatesToCellName(6, fila)
	if err := f.SetCellStyle(hoja, inicio, fin, negrita); err != nil {
		return fmt.Errorf("error al aplicar estilo: %w", err)
	}

	if err := f.SetColWidth(hoja, "A", "F", 18); err != nil {
		return fmt.Errorf("error al ajustar columnas: %w", err)
	}
	return nil
}

func escribirFila(f *excelize.File, hoja string, fila int, valores []interface{}) error {
	for i, v := range valores {
		celda, _ := excelize.CoordinatesToCellName(i+1, fila)
		if err := f.SetCellValue(hoja, celda, v); err != nil {
			return fmt.Errorf("error al escribir celda %s: %w", celda, err)
		}
	}
	return nil
}

// monto convierte a float64 para que las celdas queden como números y no
// como texto; los importes de nómina caben sin pérdida apreciable.
func monto(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// nombreHoja recorta el nombre del área al límite de 31 caracteres de los
// nombres de hoja y elimina los caracteres que Excel prohíbe.
func nombreHoja(nombre string, i int) string {
	limpio := limpiarNombre(nombre)
	if limpio == "" {
		limpio = fmt.Sprintf("Area %d", i+1)
	}
	if r := []rune(limpio); len(r) > 31 {
		limpio = string(r[:31])
	}
	return limpio
}

func nombreArchivo(nombre string, i int) string {
	limpio := limpiarNombre(nombre)
	if limpio == "" {
		limpio = fmt.Sprintf("area-%d", i+1)
	}
	return strings.ReplaceAll(limpio, " ", "-")
}

func limpiarNombre(nombre string) string {
	reemplazos := strings.NewReplacer(":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "")
	return strings.TrimSpace(reemplazos.Replace(nombre))
}
