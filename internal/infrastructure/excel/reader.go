package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain/docente"
)

// camposCargas campos requeridos de una plantilla de cargas de horas.
var camposCargas = []string{CampoCodigo, CampoMateria, CampoHoras, CampoTarifa, CampoPagable}

// camposDocentes campos requeridos de una plantilla de docentes.
var camposDocentes = []string{CampoCodigo, CampoNombre, CampoRFC}

// LeerCargas lee la primera hoja del XLSX y devuelve las filas crudas de
// carga de horas. Las filas con materia vacía se descartan en silencio
// (renglones decorativos o subtotales de las plantillas manuales). Los
// códigos numéricos se rellenan con ceros a la izquierda.
func LeerCargas(r io.Reader) ([]dto.CargaRow, error) {
	filas, err := leerFilas(r)
	if err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, nil
	}

	mapeo := GuessColumns(filas[0], camposCargas, MapeoCargas().Columnas)

	var rows []dto.CargaRow
	for i, fila := range filas[1:] {
		materia := strings.TrimSpace(celda(fila, mapeo.Col(CampoMateria)))
		if materia == "" {
			continue
		}
		rows = append(rows, dto.CargaRow{
			Linea:   i + 2,
			Codigo:  docente.NormalizarCodigo(celda(fila, mapeo.Col(CampoCodigo))),
			Materia: materia,
			Horas:   celdaValor(fila, mapeo.Col(CampoHoras)),
			Tarifa:  celdaValor(fila, mapeo.Col(CampoTarifa)),
			Pagable: celdaValor(fila, mapeo.Col(CampoPagable)),
		})
	}
	return rows, nil
}

// LeerDocentes lee la primera hoja del XLSX y devuelve las filas crudas de
// docentes. Se descartan en silencio las filas sin código ni nombre.
func LeerDocentes(r io.Reader) ([]dto.DocenteRow, error) {
	filas, err := leerFilas(r)
	if err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, nil
	}

	mapeo := GuessColumns(filas[0], camposDocentes, MapeoDocentes().Columnas)

	var rows []dto.DocenteRow
	for i, fila := range filas[1:] {
		codigo := docente.NormalizarCodigo(celda(fila, mapeo.Col(CampoCodigo)))
		nombre := strings.TrimSpace(celda(fila, mapeo.Col(CampoNombre)))
		if codigo == "" && nombre == "" {
			continue
		}
		rows = append(rows, dto.DocenteRow{
			Linea:  i + 2,
			Codigo: codigo,
			Nombre: nombre,
			RFC:    docente.NormalizarRFC(celda(fila, mapeo.Col(CampoRFC))),
		})
	}
	return rows, nil
}

// leerFilas abre el libro y devuelve las filas de la primera hoja.
func leerFilas(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error al abrir el archivo: %w", err)
	}
	defer f.Close()

	hoja := f.GetSheetName(0)
	if hoja == "" {
		return nil, fmt.Errorf("el archivo no tiene hojas")
	}
	filas, err := f.GetRows(hoja)
	if err != nil {
		return nil, fmt.Errorf("error al leer la hoja %s: %w", hoja, err)
	}
	return filas, nil
}

func celda(fila []string, idx int) string {
	if idx < 0 || idx >= len(fila) {
		return ""
	}
	return fila[idx]
}

// celdaValor devuelve nil para celdas fuera de rango o vacías, de modo que
// el motor de conciliación las reporte como faltantes y no como cadena
// vacía inválida.
func celdaValor(fila []string, idx int) interface{} {
	s := strings.TrimSpace(celda(fila, idx))
	if s == "" {
		return nil
	}
	return s
}
