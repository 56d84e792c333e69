package http

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/application/usecase"
	"github.com/sisacad/nomina-docentes-api/internal/infrastructure/excel"
)

// DocenteHandler maneja el catálogo de docentes, su importación masiva y la
// plantilla de importación.
type DocenteHandler struct {
	uc         *usecase.DocenteUseCase
	uploadsDir string
}

// NewDocenteHandler construye el handler.
func NewDocenteHandler(uc *usecase.DocenteUseCase, uploadsDir string) *DocenteHandler {
	return &DocenteHandler{uc: uc, uploadsDir: uploadsDir}
}

// Create godoc
// @Summary      Crear docente
// @Tags         docentes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocenteRequest  true  "código, rfc, nombre"
// @Success      201   {object}  dto.DocenteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/docentes [post]
func (h *DocenteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocenteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Codigo == "" || in.RFC == "" || in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo, rfc y nombre son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener docente por ID
// @Tags         docentes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del docente"
// @Success      200  {object}  dto.DocenteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/docentes/{id} [get]
func (h *DocenteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar docentes
// @Tags         docentes
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página (1..n)"
// @Param        pageSize  query  int     false  "Tamaño de página"
// @Param        query     query  string  false  "Búsqueda por código, nombre o RFC"
// @Success      200  {object}  dto.DocenteListResponse
// @Router       /api/docentes [get]
func (h *DocenteHandler) List(c *fiber.Ctx) error {
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
// @Summary      Actualizar docente
// @Tags         docentes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del docente"
// @Param        body  body  dto.UpdateDocenteRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DocenteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/docentes/{id} [put]
func (h *DocenteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDocenteRequest
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
// @Summary      Eliminar docente (baja lógica si tiene cargas)
// @Tags         docentes
// @Security     Bearer
// @Param        id   path  string  true  "ID del docente"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/docentes/{id} [delete]
func (h *DocenteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Importar godoc
// @Summary      Importar docentes desde XLSX
// @Description  Las filas con error no abortan el resto del archivo; la
// @Description  respuesta incluye los errores por línea.
// @Tags         docentes
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo XLSX"
// @Success      200   {object}  dto.ImportDocentesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/docentes/import [post]
func (h *DocenteHandler) Importar(c *fiber.Ctx) error {
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

	filas, err := excel.LeerDocentes(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	out, err := h.uc.Importar(c.Context(), GetUserID(c), filas)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Plantilla godoc
// @Summary      Descargar plantilla de importación de docentes
// @Tags         docentes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/docentes/plantilla [get]
func (h *DocenteHandler) Plantilla(c *fiber.Ctx) error {
	data, _, err := excel.PlantillaDocentes()
	if err != nil {
		return responderError(c, err)
	}
	return enviarXLSX(c, "plantilla-docentes.xlsx", data)
}

// guardarArchivo persiste el archivo multipart "file" en el directorio de
// uploads con un sufijo de timestamp para evitar colisiones, y devuelve la
// ruta. El que llama es responsable de borrarlo.
func guardarArchivo(c *fiber.Ctx, dir string) (string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("archivo 'file' requerido")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error al preparar el directorio de uploads: %w", err)
	}
	nombre := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(fh.Filename))
	ruta := filepath.Join(dir, nombre)
	if err := c.SaveFile(fh, ruta); err != nil {
		return "", fmt.Errorf("error al guardar el archivo: %w", err)
	}
	return ruta, nil
}

// enviarXLSX responde un adjunto XLSX con los encabezados correctos.
func enviarXLSX(c *fiber.Ctx, nombre string, data []byte) error {
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	return c.Send(data)
}
