package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/application/pagos"
)

// PagosHandler maneja el reporte de pagos y sus exportes.
type PagosHandler struct {
	uc *pagos.UseCase
}

// NewPagosHandler construye el handler.
func NewPagosHandler(uc *pagos.UseCase) *PagosHandler {
	return &PagosHandler{uc: uc}
}

// Reporte godoc
// @Summary      Reporte plano de pagos del periodo
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Param        periodo_id  query  string  true   "ID del periodo"
// @Param        area_id     query  string  false  "Filtrar por área"
// @Param        page        query  int     false  "Página (1..n)"
// @Param        pageSize    query  int     false  "Tamaño de página"
// @Param        query       query  string  false  "Búsqueda por docente o materia"
// @Success      200  {object}  dto.CargaListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pagos/reporte [get]
func (h *PagosHandler) Reporte(c *fiber.Ctx) error {
	var in dto.ReportePagosRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Reporte(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Pivote godoc
// @Summary      Matriz docentes × áreas del periodo
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Param        periodo_id  query  string  true  "ID del periodo"
// @Success      200  {object}  dto.PivoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pagos/pivote [get]
func (h *PagosHandler) Pivote(c *fiber.Ctx) error {
	periodoID := c.Query("periodo_id")
	if periodoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo_id es requerido"})
	}
	out, err := h.uc.Pivote(c.Context(), periodoID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ExportarExcel godoc
// @Summary      Exportar el pivote del periodo a XLSX
// @Tags         pagos
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        periodo_id  query  string  true  "ID del periodo"
// @Success      200  {file}  file
// @Router       /api/pagos/exportar/excel [get]
func (h *PagosHandler) ExportarExcel(c *fiber.Ctx) error {
	periodoID := c.Query("periodo_id")
	if periodoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo_id es requerido"})
	}
	nombre, data, err := h.uc.ExportarExcel(c.Context(), periodoID)
	if err != nil {
		return responderError(c, err)
	}
	return enviarXLSX(c, nombre, data)
}

// ExportarAreasZip godoc
// @Summary      Exportar un XLSX por área en un ZIP
// @Tags         pagos
// @Security     Bearer
// @Produce      application/zip
// @Param        periodo_id  query  string  true  "ID del periodo"
// @Success      200  {file}  file
// @Router       /api/pagos/exportar/areas/zip [get]
func (h *PagosHandler) ExportarAreasZip(c *fiber.Ctx) error {
	periodoID := c.Query("periodo_id")
	if periodoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo_id es requerido"})
	}
	nombre, data, err := h.uc.ExportarAreasZip(c.Context(), periodoID)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	return c.Send(data)
}

// ExportarAreasMultihojas godoc
// @Summary      Exportar un libro con una hoja por área
// @Tags         pagos
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        periodo_id  query  string  true  "ID del periodo"
// @Success      200  {file}  file
// @Router       /api/pagos/exportar/areas/excel-multihojas [get]
func (h *PagosHandler) ExportarAreasMultihojas(c *fiber.Ctx) error {
	periodoID := c.Query("periodo_id")
	if periodoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo_id es requerido"})
	}
	nombre, data, err := h.uc.ExportarAreasMultihojas(c.Context(), periodoID)
	if err != nil {
		return responderError(c, err)
	}
	return enviarXLSX(c, nombre, data)
}

// ExportarPDF godoc
// @Summary      Exportar el pivote del periodo a PDF
// @Tags         pagos
// @Security     Bearer
// @Produce      application/pdf
// @Param        periodo_id  query  string  true  "ID del periodo"
// @Success      200  {file}  file
// @Router       /api/pagos/exportar/pdf [get]
func (h *PagosHandler) ExportarPDF(c *fiber.Ctx) error {
	periodoID := c.Query("periodo_id")
	if periodoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo_id es requerido"})
	}
	nombre, data, err := h.uc.ExportarPDF(c.Context(), periodoID)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	return c.Send(data)
}
