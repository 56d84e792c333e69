package http

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/sisacad/nomina-docentes-api/internal/application/carga"
	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/infrastructure/excel"
)

// CargaHandler maneja la captura de cargas de horas: plantilla, vista
// previa del lote, captura individual y confirmación.
type CargaHandler struct {
	uc         *carga.UseCase
	uploadsDir string
}

// NewCargaHandler construye el handler.
func NewCargaHandler(uc *carga.UseCase, uploadsDir string) *CargaHandler {
	return &CargaHandler{uc: uc, uploadsDir: uploadsDir}
}

func actorDe(c *fiber.Ctx) carga.Actor {
	return carga.Actor{ID: GetUserID(c), Roles: GetRoles(c)}
}

// Plantilla godoc
// @Summary      Descargar plantilla de captura de cargas
// @Tags         carga-horas
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/carga-horas/plantillas [get]
func (h *CargaHandler) Plantilla(c *fiber.Ctx) error {
	data, _, err := excel.PlantillaCargas()
	if err != nil {
		return responderError(c, err)
	}
	return enviarXLSX(c, "plantilla-cargas.xlsx", data)
}

// Procesar godoc
// @Summary      Procesar archivo de cargas (vista previa, sin persistir)
// @Description  Valida y normaliza el archivo contra el periodo y el área;
// @Description  devuelve filas válidas y errores por línea. Nada se guarda.
// @Tags         carga-horas
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file        formData  file    true  "Archivo XLSX"
// @Param        periodo_id  formData  string  true  "ID del periodo (debe estar OPEN)"
// @Param        area_id     formData  string  true  "ID del área"
// @Success      200  {object}  dto.ProcesarLoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/carga-horas/procesar [post]
func (h *CargaHandler) Procesar(c *fiber.Ctx) error {
	periodoID := c.FormValue("periodo_id")
	areaID := c.FormValue("area_id")
	if periodoID == "" || areaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo_id y area_id son requeridos"})
	}

	ruta, err := guardarArchivo(c, h.uploadsDir)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	defer os.Remove(ruta)

	f, err := os.Open(ruta)
	if err != nil {
		return responderError(c, fmt.Errorf("error al abrir el archivo subido: %w", err))
	}
	defer f.Close()

	filas, err := excel.LeerCargas(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}

	out, err := h.uc.Procesar(c.Context(), actorDe(c), dto.ProcesarLoteRequest{
		PeriodoID: periodoID,
		AreaID:    areaID,
		Filas:     filas,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ProcesarIndividual godoc
// @Summary      Validar una carga capturada a mano (vista previa)
// @Tags         carga-horas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcesarIndividualRequest  true  "periodo_id, area_id y fila"
// @Success      200   {object}  dto.ProcesarLoteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carga-horas/procesar-individual [post]
func (h *CargaHandler) ProcesarIndividual(c *fiber.Ctx) error {
	var in dto.ProcesarIndividualRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PeriodoID == "" || in.AreaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo_id y area_id son requeridos"})
	}
	out, err := h.uc.ProcesarIndividual(c.Context(), actorDe(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Confirmar godoc
// @Summary      Confirmar un lote de cargas (persiste)
// @Description  Las filas válidas se insertan o actualizan por su clave
// @Description  natural (docente, periodo, área, materia) en una sola
// @Description  transacción; las filas con error se reportan sin abortar
// @Description  el lote.
// @Tags         carga-horas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcesarLoteRequest  true  "periodo_id, area_id y filas"
// @Success      200   {object}  dto.ProcesarLoteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carga-horas/confirmar [post]
func (h *CargaHandler) Confirmar(c *fiber.Ctx) error {
	var in dto.ProcesarLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PeriodoID == "" || in.AreaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo_id y area_id son requeridos"})
	}
	out, err := h.uc.Confirmar(c.Context(), actorDe(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cargas registradas
// @Tags         carga-horas
// @Security     Bearer
// @Produce      json
// @Param        periodo_id  query  string  true   "ID del periodo"
// @Param        area_id     query  string  false  "Filtrar por área"
// @Param        page        query  int     false  "Página (1..n)"
// @Param        pageSize    query  int     false  "Tamaño de página"
// @Param        query       query  string  false  "Búsqueda por docente o materia"
// @Success      200  {object}  dto.CargaListResponse
// @Router       /api/carga-horas [get]
func (h *CargaHandler) List(c *fiber.Ctx) error {
	periodoID := c.Query("periodo_id")
	if periodoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo_id es requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	out, err := h.uc.List(c.Context(), periodoID, c.Query("area_id"), page)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una carga
// @Description  ADMIN y RH pueden eliminar cualquiera; COORD solo cargas de
// @Description  sus áreas y con el periodo abierto.
// @Tags         carga-horas
// @Security     Bearer
// @Param        id   path  string  true  "ID de la carga"
// @Success      204  "Sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/carga-horas/{id} [delete]
func (h *CargaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), actorDe(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
