package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUsuarioNotFound     = errors.New("usuario no encontrado")
	ErrDocenteNotFound     = errors.New("docente no encontrado")
	ErrCorreoAlreadyExists = errors.New("el correo ya está registrado")
	ErrNombreAlreadyExists = errors.New("el nombre ya está registrado")
	ErrCodigoAlreadyExists = errors.New("el código ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInvalidDateRange    = errors.New("la fecha de inicio es posterior a la fecha de fin")
)

// EstadoInvalidoError indica una transición de periodo fuera de la ruta
// DRAFT → OPEN → CLOSED → REPORTED. Incluye el estado actual para que el
// cliente pueda explicar el conflicto.
type EstadoInvalidoError struct {
	PeriodoID string
	Actual    string
	Esperado  string
}

func (e *EstadoInvalidoError) Error() string {
	return fmt.Sprintf("el periodo está en estado %s, se requiere %s", e.Actual, e.Esperado)
}

// PeriodoAbiertoError indica que ya existe un periodo abierto en el sistema.
// Nombra al periodo en conflicto: la invariante es a lo sumo un OPEN global.
type PeriodoAbiertoError struct {
	NombreAbierto string
}

func (e *PeriodoAbiertoError) Error() string {
	return fmt.Sprintf("ya existe un periodo abierto: %s", e.NombreAbierto)
}
