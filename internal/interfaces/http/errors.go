package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain"
)

// responderError traduce errores de dominio a respuestas HTTP. Los handlers
// la usan como último eslabón; los casos que requieren un mensaje distinto
// (p.ej. login) se resuelven antes de llegar aquí.
func responderError(c *fiber.Ctx, err error) error {
	var estadoErr *domain.EstadoInvalidoError
	if errors.As(err, &estadoErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ESTADO_INVALIDO", Message: estadoErr.Error()})
	}
	var abiertoErr *domain.PeriodoAbiertoError
	if errors.As(err, &abiertoErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PERIODO_ABIERTO", Message: abiertoErr.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidDateRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUsuarioNotFound),
		errors.Is(err, domain.ErrDocenteNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrCorreoAlreadyExists),
		errors.Is(err, domain.ErrNombreAlreadyExists),
		errors.Is(err, domain.ErrCodigoAlreadyExists),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}

	// Errores no clasificados (pool, SQL, etc.): el detalle va al log del
	// servidor, nunca al cliente.
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
