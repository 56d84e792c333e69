package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain"
)

func appConError(err error) *fiber.App {
	app := fiber.New()
	app.Get("/prueba", func(c *fiber.Ctx) error {
		return responderError(c, err)
	})
	return app
}

func respuestaDeError(t *testing.T, app *fiber.App) (int, dto.ErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/prueba", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// Un error de infraestructura (p.ej. un fallo de SQL envuelto por un
// repositorio) no debe filtrar su detalle al cliente: mensaje genérico en
// la respuesta, detalle completo en el log del servidor.
func TestResponderError_InternoNoFiltraDetalle(t *testing.T) {
	var buf bytes.Buffer
	anterior := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = anterior }()

	interno := fmt.Errorf("insert carga: ERROR: deadlock detected (SQLSTATE 40P01)")
	status, body := respuestaDeError(t, appConError(interno))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno del servidor", body.Message)
	assert.NotContains(t, body.Message, "SQLSTATE")

	assert.Contains(t, buf.String(), "deadlock detected",
		"el detalle del error debe quedar en el log del servidor")
	assert.Contains(t, buf.String(), "/prueba")
}

func TestResponderError_DominioConservaMensaje(t *testing.T) {
	status, body := respuestaDeError(t, appConError(domain.ErrNotFound))

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, domain.ErrNotFound.Error(), body.Message)
}

func TestResponderError_EstadoInvalidoVa409(t *testing.T) {
	err := &domain.EstadoInvalidoError{PeriodoID: "p1", Actual: "CLOSED", Esperado: "OPEN"}
	status, body := respuestaDeError(t, appConError(err))

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "ESTADO_INVALIDO", body.Code)
	assert.Contains(t, body.Message, "CLOSED")
}
