package carga

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlegar(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"  Álgebra Lineal ", "algebra lineal"},
		{"SÍ", "si"},
		{"MATEMÁTICAS", "matematicas"},
		{"física", "fisica"},
		{"", ""},
		{"  ", ""},
		{"Ñandú", "ñandu"}, // la Ñ no es marca diacrítica, se conserva
	}
	for _, c := range casos {
		assert.Equal(t, c.want, Plegar(c.in), "Plegar(%q)", c.in)
	}
}

func TestParseNumero(t *testing.T) {
	casos := []struct {
		nombre string
		in     interface{}
		want   string
		errOK  bool
	}{
		{"float64", 4.5, "4.5", false},
		{"int", 4, "4", false},
		{"decimal", decimal.RequireFromString("3.25"), "3.25", false},
		{"json.Number", json.Number("350.00"), "350", false},
		{"cadena simple", "12.5", "12.5", false},
		{"cadena con espacios extremos", "  40 ", "40", false},
		{"cadena con espacios intercalados", "1 250.5", "1250.5", false},
		{"nil", nil, "", true},
		{"cadena vacía", "", "", true},
		{"cadena solo espacios", "   ", "", true},
		{"no numérico", "cuatro", "", true},
		{"tipo raro", struct{}{}, "", true},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			d, err := ParseNumero(c.in)
			if c.errOK {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, d.Equal(decimal.RequireFromString(c.want)),
				"esperado %s, obtenido %s", c.want, d)
		})
	}
}

func TestParseHoras(t *testing.T) {
	_, err := ParseHoras(0)
	assert.Error(t, err, "cero horas no es válido")

	_, err = ParseHoras(-2)
	assert.Error(t, err, "horas negativas no son válidas")

	d, err := ParseHoras("0.5")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("0.5")))
}

func TestParseTarifa(t *testing.T) {
	d, err := ParseTarifa(0)
	require.NoError(t, err, "tarifa cero es válida (carga no pagable)")
	assert.True(t, d.IsZero())

	_, err = ParseTarifa(-1)
	assert.Error(t, err, "tarifa negativa no es válida")
}

func TestParsePagable(t *testing.T) {
	verdaderos := []interface{}{true, 1, 1.0, "1", "SI", "Sí", "sí", "s", "y", "yes", "TRUE", "verdadero", json.Number("1")}
	for _, v := range verdaderos {
		got, err := ParsePagable(v)
		require.NoError(t, err, "ParsePagable(%v)", v)
		assert.True(t, got, "ParsePagable(%v) debe ser true", v)
	}

	falsos := []interface{}{false, 0, 0.0, "0", "NO", "no", "n", "FALSE", "falso", json.Number("0")}
	for _, v := range falsos {
		got, err := ParsePagable(v)
		require.NoError(t, err, "ParsePagable(%v)", v)
		assert.False(t, got, "ParsePagable(%v) debe ser false", v)
	}

	invalidos := []interface{}{nil, "tal vez", "2", 2, 0.5, struct{}{}}
	for _, v := range invalidos {
		_, err := ParsePagable(v)
		assert.Error(t, err, "ParsePagable(%v) debe fallar", v)
	}
}
