// Package excel implementa la ingestión y generación de hojas de cálculo:
// plantillas de carga, importación con adivinanza de encabezados y los
// reportes XLSX/ZIP de nómina.
package excel

import (
	"github.com/sisacad/nomina-docentes-api/internal/application/carga"
)

// Campos canónicos de las plantillas.
const (
	CampoCodigo  = "codigo"
	CampoNombre  = "nombre"
	CampoRFC     = "rfc"
	CampoMateria = "materia"
	CampoHoras   = "horas"
	CampoTarifa  = "tarifa"
	CampoPagable = "pagable"
)

// ColumnMapping asigna campo canónico → índice de columna. Lo produce la
// generación de plantillas y se pasa explícitamente al parser de
// importación; no hay estado global de mapeo.
type ColumnMapping struct {
	Columnas map[string]int
	// Posicional indica que los encabezados no se pudieron resolver y se
	// usaron las posiciones por defecto de la plantilla.
	Posicional bool
}

// Col devuelve el índice de columna del campo, o -1 si no está mapeado.
func (m ColumnMapping) Col(campo string) int {
	if i, ok := m.Columnas[campo]; ok {
		return i
	}
	return -1
}

// sinonimos reconoce las variantes de encabezado vistas en plantillas
// subidas históricamente. La comparación es sin acentos ni mayúsculas.
var sinonimos = map[string][]string{
	CampoCodigo:  {"codigo", "clave", "no. empleado", "no empleado", "num. empleado", "numero de empleado", "codigo docente", "codigo de empleado"},
	CampoNombre:  {"nombre", "nombre completo", "docente", "nombre del docente"},
	CampoRFC:     {"rfc", "r.f.c.", "r.f.c", "clave fiscal"},
	CampoMateria: {"materia", "asignatura", "curso", "nombre de la materia", "nombre materia"},
	CampoHoras:   {"horas", "hrs", "hrs.", "total horas", "horas impartidas", "no. horas"},
	CampoTarifa:  {"tarifa", "costo hora", "costo por hora", "precio hora", "tarifa por hora", "costo"},
	CampoPagable: {"pagable", "pagar", "se paga", "aplica pago", "es pagable"},
}

// GuessColumns intenta resolver los campos pedidos contra la fila de
// encabezados probando los sinónimos conocidos. Si no logra resolver todos
// los campos marcados como requeridos cae a las posiciones de respaldo
// dadas (el orden histórico de la plantilla). El comportamiento es
// deliberadamente compatible con las plantillas ya circulando; por eso
// vive aislado aquí y no inline en cada importación.
func GuessColumns(encabezados []string, campos []string, respaldo map[string]int) ColumnMapping {
	normalizados := make([]string, len(encabezados))
	for i, h := range encabezados {
		normalizados[i] = carga.Plegar(h)
	}

	columnas := make(map[string]int, len(campos))
	for _, campo := range campos {
		for idx, h := range normalizados {
			if h == "" {
				continue
			}
			if coincide(campo, h) {
				columnas[campo] = idx
				break
			}
		}
	}

	if len(columnas) == len(campos) {
		return ColumnMapping{Columnas: columnas}
	}
	// Encabezados irreconocibles: posiciones fijas de la plantilla.
	fijas := make(map[string]int, len(respaldo))
	for campo, idx := range respaldo {
		fijas[campo] = idx
	}
	return ColumnMapping{Columnas: fijas, Posicional: true}
}

func coincide(campo, encabezado string) bool {
	for _, s := range sinonimos[campo] {
		if carga.Plegar(s) == encabezado {
			return true
		}
	}
	return false
}

// MapeoCargas es el mapeo que produce la plantilla de cargas de horas.
func MapeoCargas() ColumnMapping {
	return ColumnMapping{Columnas: map[string]int{
		CampoCodigo:  0,
		CampoMateria: 1,
		CampoHoras:   2,
		CampoTarifa:  3,
		CampoPagable: 4,
	}}
}

// MapeoDocentes es el mapeo que produce la plantilla de docentes:
// primera columna código, segunda nombre, tercera RFC.
func MapeoDocentes() ColumnMapping {
	return ColumnMapping{Columnas: map[string]int{
		CampoCodigo: 0,
		CampoNombre: 1,
		CampoRFC:    2,
	}}
}
