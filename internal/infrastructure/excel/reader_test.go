package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func libroDePrueba(t *testing.T, filas [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, fila := range filas {
		for j, v := range fila {
			celda, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", celda, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestGuessColumnsReconoceSinonimos(t *testing.T) {
	encabezados := []string{"No. Empleado", "ASIGNATURA", "Hrs.", "Costo por hora", "¿Se paga?"}
	m := GuessColumns(encabezados, camposCargas, MapeoCargas().Columnas)

	// "¿Se paga?" no coincide con ningún sinónimo, así que se cae al
	// respaldo posicional completo.
	assert.True(t, m.Posicional)
	assert.Equal(t, 4, m.Col(CampoPagable))
}

func TestGuessColumnsDesordenado(t *testing.T) {
	encabezados := []string{"Tarifa", "Código", "Pagable", "Materia", "Horas"}
	m := GuessColumns(encabezados, camposCargas, MapeoCargas().Columnas)

	assert.False(t, m.Posicional)
	assert.Equal(t, 1, m.Col(CampoCodigo))
	assert.Equal(t, 3, m.Col(CampoMateria))
	assert.Equal(t, 4, m.Col(CampoHoras))
	assert.Equal(t, 0, m.Col(CampoTarifa))
	assert.Equal(t, 2, m.Col(CampoPagable))
}

func TestGuessColumnsIgnoraAcentosYMayusculas(t *testing.T) {
	encabezados := []string{"CÓDIGO", "Materia", "HORAS", "tarifa", "PAGABLE"}
	m := GuessColumns(encabezados, camposCargas, MapeoCargas().Columnas)

	assert.False(t, m.Posicional)
	assert.Equal(t, 0, m.Col(CampoCodigo))
}

func TestGuessColumnsRespaldoPosicional(t *testing.T) {
	encabezados := []string{"Columna A", "Columna B", "Columna C"}
	m := GuessColumns(encabezados, camposDocentes, MapeoDocentes().Columnas)

	assert.True(t, m.Posicional)
	assert.Equal(t, 0, m.Col(CampoCodigo))
	assert.Equal(t, 1, m.Col(CampoNombre))
	assert.Equal(t, 2, m.Col(CampoRFC))
}

func TestLeerCargas(t *testing.T) {
	r := libroDePrueba(t, [][]interface{}{
		{"Código", "Materia", "Horas", "Tarifa", "Pagable"},
		{"123", "Álgebra Lineal", 4, 350.0, "SI"},
		{"000456", "Cálculo I", "3.5", "400", 1},
	})

	filas, err := LeerCargas(r)
	require.NoError(t, err)
	require.Len(t, filas, 2)

	assert.Equal(t, 2, filas[0].Linea)
	assert.Equal(t, "000123", filas[0].Codigo, "los códigos numéricos se rellenan a seis dígitos")
	assert.Equal(t, "Álgebra Lineal", filas[0].Materia)
	assert.Equal(t, "000456", filas[1].Codigo)
	assert.Equal(t, 3, filas[1].Linea)
}

func TestLeerCargasDescartaFilasSinMateria(t *testing.T) {
	r := libroDePrueba(t, [][]interface{}{
		{"Código", "Materia", "Horas", "Tarifa", "Pagable"},
		{"123", "Física II", 2, 300, "SI"},
		{"999", "", 5, 300, "SI"},
		{"", "   ", "", "", ""},
	})

	filas, err := LeerCargas(r)
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "Física II", filas[0].Materia)
}

func TestLeerCargasCeldasVaciasComoNil(t *testing.T) {
	r := libroDePrueba(t, [][]interface{}{
		{"Código", "Materia", "Horas", "Tarifa", "Pagable"},
		{"123", "Química", "", 300, "SI"},
	})

	filas, err := LeerCargas(r)
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Nil(t, filas[0].Horas, "celda vacía llega como nil, no como cadena vacía")
	assert.Equal(t, "300", filas[0].Tarifa)
}

func TestLeerCargasEncabezadosIrreconocibles(t *testing.T) {
	// Sin encabezados reconocibles el importador asume el orden de la
	// plantilla oficial.
	r := libroDePrueba(t, [][]interface{}{
		{"A", "B", "C", "D", "E"},
		{"77", "Historia", 2, 250, "NO"},
	})

	filas, err := LeerCargas(r)
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "000077", filas[0].Codigo)
	assert.Equal(t, "Historia", filas[0].Materia)
}

func TestLeerDocentes(t *testing.T) {
	r := libroDePrueba(t, [][]interface{}{
		{"Clave", "Nombre completo", "R.F.C."},
		{"88", "Pérez López Juan", "pelj800101ab1"},
		{"", "", ""},
	})

	filas, err := LeerDocentes(r)
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "000088", filas[0].Codigo)
	assert.Equal(t, "Pérez López Juan", filas[0].Nombre)
	assert.Equal(t, "PELJ800101AB1", filas[0].RFC, "el RFC se normaliza a mayúsculas")
}

func TestLeerCargasArchivoInvalido(t *testing.T) {
	_, err := LeerCargas(bytes.NewReader([]byte("esto no es un xlsx")))
	assert.Error(t, err)
}

func TestPlantillaCargasRoundTrip(t *testing.T) {
	libro, mapeo, err := PlantillaCargas()
	require.NoError(t, err)
	assert.False(t, mapeo.Posicional)

	// La plantilla generada debe ser legible por el propio importador con
	// el mapeo que la produjo.
	filas, err := LeerCargas(bytes.NewReader(libro))
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "000123", filas[0].Codigo)
}
