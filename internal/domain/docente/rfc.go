// Package docente contiene validaciones de dominio para el personal docente:
// patrón del RFC (clave fiscal mexicana) y normalización del código interno.
package docente

import (
	"errors"
	"regexp"
	"strings"
)

// ErrRFCInvalido indica que la cadena no cumple el patrón de RFC.
var ErrRFCInvalido = errors.New("RFC inválido")

// AnchoCodigo es el ancho fijo del código interno de docente.
const AnchoCodigo = 6

var (
	// Patrón tolerante: 3-4 letras, fecha de 6 dígitos y homoclave de 0 a 3
	// caracteres. Los registros importados de sistemas anteriores suelen
	// venir sin homoclave.
	rfcLaxo = regexp.MustCompile(`^[A-ZÑ&]{3,4}[0-9]{6}[A-Z0-9]{0,3}$`)

	// Patrón estricto: homoclave completa de 3 caracteres. Se exige al dar
	// de alta un docente manualmente.
	rfcEstricto = regexp.MustCompile(`^[A-ZÑ&]{3,4}[0-9]{6}[A-Z0-9]{3}$`)

	soloDigitos = regexp.MustCompile(`^[0-9]+$`)
)

// ValidarRFC valida un RFC con el patrón tolerante (homoclave opcional).
func ValidarRFC(rfc string) error {
	if !rfcLaxo.MatchString(normalizarRFC(rfc)) {
		return ErrRFCInvalido
	}
	return nil
}

// ValidarRFCEstricto valida un RFC exigiendo la homoclave de 3 caracteres.
func ValidarRFCEstricto(rfc string) error {
	if !rfcEstricto.MatchString(normalizarRFC(rfc)) {
		return ErrRFCInvalido
	}
	return nil
}

// NormalizarRFC devuelve el RFC en mayúsculas y sin espacios.
func NormalizarRFC(rfc string) string {
	return normalizarRFC(rfc)
}

func normalizarRFC(rfc string) string {
	return strings.ToUpper(strings.TrimSpace(rfc))
}

// NormalizarCodigo deja el código interno en su forma canónica: si la cadena
// es numérica se rellena con ceros a la izquierda hasta AnchoCodigo dígitos.
// Cadenas no numéricas se devuelven recortadas tal cual (no hay forma canónica).
func NormalizarCodigo(codigo string) string {
	c := strings.TrimSpace(codigo)
	if c == "" || !soloDigitos.MatchString(c) {
		return c
	}
	for len(c) < AnchoCodigo {
		c = "0" + c
	}
	return c
}
