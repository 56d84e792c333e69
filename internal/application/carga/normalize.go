package carga

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Las filas llegan del Excel o del JSON con tipos sueltos: números como
// cadenas (a veces con espacios intercalados), booleanos como "sí"/"no",
// 0/1, etc. Estas funciones concentran la normalización en un solo lugar.

var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Plegar devuelve el texto en minúsculas, sin acentos y sin espacios en los
// extremos. Se usa para claves de comparación (materia, banderas sí/no),
// no para persistencia.
func Plegar(s string) string {
	plano, _, err := transform.String(quitarAcentos, s)
	if err != nil {
		plano = s
	}
	return strings.ToLower(strings.TrimSpace(plano))
}

// ParseNumero convierte un valor suelto (número o cadena) a decimal.
// Las cadenas pueden traer espacios intercalados ("1 250.5"); cualquier
// cosa que no resulte en un número válido se rechaza.
func ParseNumero(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, fmt.Errorf("valor vacío")
	case decimal.Decimal:
		return n, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		// quitar todo espacio, incluido el intercalado
		s := strings.Join(strings.Fields(n), "")
		if s == "" {
			return decimal.Zero, fmt.Errorf("valor vacío")
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("número inválido: %q", n)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("tipo no numérico: %T", v)
	}
}

// ParseHoras valida horas: numéricas y estrictamente positivas.
func ParseHoras(v interface{}) (decimal.Decimal, error) {
	d, err := ParseNumero(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("horas: %w", err)
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("horas debe ser mayor que 0")
	}
	return d, nil
}

// ParseTarifa valida la tarifa: numérica y no negativa.
func ParseTarifa(v interface{}) (decimal.Decimal, error) {
	d, err := ParseNumero(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("tarifa: %w", err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("tarifa no puede ser negativa")
	}
	return d, nil
}

// ParsePagable normaliza la bandera de pagable. Acepta booleanos, 0/1
// numérico y las variantes de texto habituales en las plantillas
// ("sí"/"no", "s"/"n", "true"/"false", "y"/"yes"). Todo lo demás se rechaza.
func ParsePagable(v interface{}) (bool, error) {
	switch b := v.(type) {
	case nil:
		return false, fmt.Errorf("pagable vacío")
	case bool:
		return b, nil
	case float64:
		if b == 0 {
			return false, nil
		}
		if b == 1 {
			return true, nil
		}
		return false, fmt.Errorf("pagable numérico debe ser 0 o 1")
	case int:
		if b == 0 {
			return false, nil
		}
		if b == 1 {
			return true, nil
		}
		return false, fmt.Errorf("pagable numérico debe ser 0 o 1")
	case json.Number:
		return ParsePagable(b.String())
	case string:
		switch Plegar(b) {
		case "1", "true", "si", "s", "y", "yes", "verdadero":
			return true, nil
		case "0", "false", "no", "n", "falso":
			return false, nil
		default:
			return false, fmt.Errorf("pagable no reconocido: %q", b)
		}
	default:
		return false, fmt.Errorf("tipo de pagable no reconocido: %T", v)
	}
}
