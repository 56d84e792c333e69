package docente_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sisacad/nomina-docentes-api/internal/domain/docente"
)

// El patrón tolerante acepta RFC con y sin homoclave; el estricto solo con ella.
func TestValidarRFC_ConYSinHomoclave(t *testing.T) {
	casos := []struct {
		rfc      string
		laxoOK   bool
		estricto bool
	}{
		{"GOMC800101AB1", true, true},  // persona física con homoclave
		{"GOMC800101", true, false},    // sin homoclave: solo laxo
		{"ABC850315XY2", true, true},   // persona moral (3 letras)
		{"gomc800101ab1", true, true},  // minúsculas se normalizan
		{" GOMC800101AB1 ", true, true},
		{"GOMC80010", false, false},  // fecha incompleta
		{"1234567890123", false, false},
		{"", false, false},
	}
	for _, c := range casos {
		errLaxo := docente.ValidarRFC(c.rfc)
		errEstricto := docente.ValidarRFCEstricto(c.rfc)
		if c.laxoOK {
			assert.NoError(t, errLaxo, "laxo debe aceptar %q", c.rfc)
		} else {
			assert.Error(t, errLaxo, "laxo debe rechazar %q", c.rfc)
		}
		if c.estricto {
			assert.NoError(t, errEstricto, "estricto debe aceptar %q", c.rfc)
		} else {
			assert.Error(t, errEstricto, "estricto debe rechazar %q", c.rfc)
		}
	}
}

// Los códigos numéricos se rellenan a 6 dígitos; los no numéricos quedan igual.
func TestNormalizarCodigo(t *testing.T) {
	assert.Equal(t, "000123", docente.NormalizarCodigo("123"))
	assert.Equal(t, "000123", docente.NormalizarCodigo(" 123 "))
	assert.Equal(t, "123456", docente.NormalizarCodigo("123456"))
	assert.Equal(t, "1234567", docente.NormalizarCodigo("1234567"), "más largo que el ancho no se recorta")
	assert.Equal(t, "A-12", docente.NormalizarCodigo("A-12"))
	assert.Equal(t, "", docente.NormalizarCodigo("   "))
}
