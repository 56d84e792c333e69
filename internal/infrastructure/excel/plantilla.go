package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Encabezados oficiales de las plantillas descargables. El orden define el
// mapeo posicional de respaldo del importador.
var (
	encabezadosCargas   = []string{"Código", "Materia", "Horas", "Tarifa", "Pagable"}
	encabezadosDocentes = []string{"Código", "Nombre", "RFC"}
)

// PlantillaCargas genera la plantilla XLSX para captura de cargas de horas
// y devuelve el mapeo de columnas con el que fue generada, para que el
// importador reciba el mismo mapeo que produjo el archivo.
func PlantillaCargas() ([]byte, ColumnMapping, error) {
	b, err := plantilla("Cargas", encabezadosCargas, []interface{}{"000123", "Álgebra Lineal", 4, 350.00, "SI"})
	if err != nil {
		return nil, ColumnMapping{}, err
	}
	return b, MapeoCargas(), nil
}

// PlantillaDocentes genera la plantilla XLSX para importación de docentes.
func PlantillaDocentes() ([]byte, ColumnMapping, error) {
	b, err := plantilla("Docentes", encabezadosDocentes, []interface{}{"000123", "Pérez López Juan", "PELJ800101AB1"})
	if err != nil {
		return nil, ColumnMapping{}, err
	}
	return b, MapeoDocentes(), nil
}

func plantilla(hoja string, encabezados []string, ejemplo []interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, fmt.Errorf("error al nombrar la hoja: %w", err)
	}
	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("error al crear el estilo: %w", err)
	}
	for i, h := range encabezados {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(hoja, celda, h); err != nil {
			return nil, fmt.Errorf("error al escribir encabezado: %w", err)
		}
		if err := f.SetCellStyle(hoja, celda, celda, negrita); err != nil {
			return nil, fmt.Errorf("error al aplicar estilo: %w", err)
		}
	}
	for i, v := range ejemplo {
		celda, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(hoja, celda, v); err != nil {
			return nil, fmt.Errorf("error al escribir fila de ejemplo: %w", err)
		}
	}
	if err := f.SetColWidth(hoja, "A", colLetra(len(encabezados)), 18); err != nil {
		return nil, fmt.Errorf("error al ajustar columnas: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error al serializar la plantilla: %w", err)
	}
	return buf.Bytes(), nil
}

func colLetra(n int) string {
	s, _ := excelize.ColumnNumberToName(n)
	return s
}
