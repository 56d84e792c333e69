package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/application/usecase"
)

// AreaHandler maneja las áreas académicas y sus coordinadores.
type AreaHandler struct {
	uc *usecase.AreaUseCase
}

// NewAreaHandler construye el handler.
func NewAreaHandler(uc *usecase.AreaUseCase) *AreaHandler {
	return &AreaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear área
// @Tags         areas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAreaRequest  true  "Nombre del área"
// @Success      201   {object}  dto.AreaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/areas [post]
func (h *AreaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener área por ID
// @Tags         areas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del área"
// @Success      200  {object}  dto.AreaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [get]
func (h *AreaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar áreas
// @Tags         areas
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página (1..n)"
// @Param        pageSize  query  int     false  "Tamaño de página"
// @Param        query     query  string  false  "Búsqueda por nombre"
// @Success      200  {object}  dto.AreaListResponse
// @Router       /api/areas [get]
func (h *AreaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar área
// @Tags         areas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del área"
// @Param        body  body  dto.UpdateAreaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AreaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [put]
func (h *AreaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar área (baja lógica si tiene cargas)
// @Tags         areas
// @Security     Bearer
// @Param        id   path  string  true  "ID del área"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [delete]
func (h *AreaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AsignarCoordinador godoc
// @Summary      Asignar coordinador a un área
// @Tags         areas
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del área"
// @Param        body  body  dto.AsignarCoordinadorRequest  true  "usuario_id"
// @Success      204   "Sin contenido"
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/areas/{id}/coordinadores [post]
func (h *AreaHandler) AsignarCoordinador(c *fiber.Ctx) error {
	var in dto.AsignarCoordinadorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UsuarioID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuario_id es requerido"})
	}
	if err := h.uc.AsignarCoordinador(c.Context(), GetUserID(c), c.Params("id"), in); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// QuitarCoordinador godoc
// @Summary      Quitar coordinador de un área
// @Tags         areas
// @Security     Bearer
// @Param        id         path  string  true  "ID del área"
// @Param        usuarioId  path  string  true  "ID del usuario"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/areas/{id}/coordinadores/{usuarioId} [delete]
func (h *AreaHandler) QuitarCoordinador(c *fiber.Ctx) error {
	if err := h.uc.QuitarCoordinador(c.Context(), GetUserID(c), c.Params("id"), c.Params("usuarioId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCoordinadores godoc
// @Summary      Listar coordinadores de un área
// @Tags         areas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del área"
// @Success      200  {array}  dto.CoordinadorResponse
// @Router       /api/areas/{id}/coordinadores [get]
func (h *AreaHandler) ListCoordinadores(c *fiber.Ctx) error {
	out, err := h.uc.ListCoordinadores(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
