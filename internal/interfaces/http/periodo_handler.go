package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/application/periodo"
	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
)

// PeriodoHandler maneja los periodos de nómina y sus transiciones de
// estado (DRAFT → OPEN → CLOSED → REPORTED).
type PeriodoHandler struct {
	uc *periodo.UseCase
}

// NewPeriodoHandler construye el handler.
func NewPeriodoHandler(uc *periodo.UseCase) *PeriodoHandler {
	return &PeriodoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear periodo (nace en DRAFT)
// @Tags         periodos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePeriodoRequest  true  "nombre, inicio, fin (YYYY-MM-DD)"
// @Success      201   {object}  dto.PeriodoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/periodos [post]
func (h *PeriodoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePeriodoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Inicio == "" || in.Fin == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, inicio y fin son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar periodos
// @Description  COORD solo ve los periodos abiertos; ADMIN y RH los ven todos.
// @Tags         periodos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PeriodoListResponse
// @Router       /api/periodos [get]
func (h *PeriodoHandler) List(c *fiber.Ctx) error {
	soloAbiertos := esSoloCoord(GetRoles(c))
	out, err := h.uc.List(c.Context(), soloAbiertos)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir nombre o fechas de un periodo en DRAFT
// @Tags         periodos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del periodo"
// @Param        body  body  dto.UpdatePeriodoRequest  true  "campos a corregir"
// @Success      200   {object}  dto.PeriodoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/periodos/{id} [patch]
func (h *PeriodoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePeriodoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener periodo por ID
// @Tags         periodos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del periodo"
// @Success      200  {object}  dto.PeriodoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/periodos/{id} [get]
func (h *PeriodoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Abrir godoc
// @Summary      Abrir periodo (DRAFT → OPEN)
// @Description  Falla con 409 si ya existe otro periodo abierto.
// @Tags         periodos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del periodo"
// @Success      200  {object}  dto.PeriodoResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/periodos/{id}/abrir [post]
func (h *PeriodoHandler) Abrir(c *fiber.Ctx) error {
	out, err := h.uc.Abrir(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Cerrar godoc
// @Summary      Cerrar periodo (OPEN → CLOSED)
// @Tags         periodos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del periodo"
// @Success      200  {object}  dto.PeriodoResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/periodos/{id}/cerrar [post]
func (h *PeriodoHandler) Cerrar(c *fiber.Ctx) error {
	out, err := h.uc.Cerrar(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Reportar godoc
// @Summary      Marcar periodo como reportado (CLOSED → REPORTED)
// @Tags         periodos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del periodo"
// @Success      200  {object}  dto.PeriodoResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/periodos/{id}/reportar [post]
func (h *PeriodoHandler) Reportar(c *fiber.Ctx) error {
	out, err := h.uc.Reportar(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// esSoloCoord indica si el usuario es coordinador sin roles administrativos.
func esSoloCoord(roles []string) bool {
	coord := false
	for _, r := range roles {
		switch r {
		case entity.RolAdmin, entity.RolRH:
			return false
		case entity.RolCoord:
			coord = true
		}
	}
	return coord
}
