package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sisacad/nomina-docentes-api/internal/application/auth"
	"github.com/sisacad/nomina-docentes-api/internal/application/carga"
	"github.com/sisacad/nomina-docentes-api/internal/application/pagos"
	"github.com/sisacad/nomina-docentes-api/internal/application/periodo"
	"github.com/sisacad/nomina-docentes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UsuarioUC  *usecase.UsuarioUseCase
	AreaUC     *usecase.AreaUseCase
	DocenteUC  *usecase.DocenteUseCase
	PeriodoUC  *periodo.UseCase
	CargaUC    *carga.UseCase
	PagosUC    *pagos.UseCase
	JWTSecret  string
	UploadsDir string
}

// Router registra las rutas de la API. La autorización por rol se declara
// completa en la tabla de reglas; los handlers solo aplican las
// restricciones de datos (p.ej. COORD limitado a sus áreas).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	areaHandler := NewAreaHandler(deps.AreaUC)
	docenteHandler := NewDocenteHandler(deps.DocenteUC, deps.UploadsDir)
	periodoHandler := NewPeriodoHandler(deps.PeriodoUC)
	cargaHandler := NewCargaHandler(deps.CargaUC, deps.UploadsDir)
	pagosHandler := NewPagosHandler(deps.PagosUC)

	// Auth (público)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	registrar(protected, []Regla{
		{fiber.MethodGet, "/me", nil, authHandler.Me},

		// Usuarios: solo ADMIN muta; RH puede consultar.
		{fiber.MethodPost, "/usuarios", soloAdmin, usuarioHandler.Create},
		{fiber.MethodGet, "/usuarios", adminRH, usuarioHandler.List},
		{fiber.MethodGet, "/usuarios/:id", adminRH, usuarioHandler.GetByID},
		{fiber.MethodPut, "/usuarios/:id", soloAdmin, usuarioHandler.Update},
		{fiber.MethodDelete, "/usuarios/:id", soloAdmin, usuarioHandler.Delete},

		// Áreas y coordinadores.
		{fiber.MethodPost, "/areas", adminRH, areaHandler.Create},
		{fiber.MethodGet, "/areas", todosRoles, areaHandler.List},
		{fiber.MethodGet, "/areas/:id", todosRoles, areaHandler.GetByID},
		{fiber.MethodPut, "/areas/:id", adminRH, areaHandler.Update},
		{fiber.MethodDelete, "/areas/:id", adminRH, areaHandler.Delete},
		{fiber.MethodPost, "/areas/:id/coordinadores", adminRH, areaHandler.AsignarCoordinador},
		{fiber.MethodGet, "/areas/:id/coordinadores", adminRH, areaHandler.ListCoordinadores},
		{fiber.MethodDelete, "/areas/:id/coordinadores/:usuarioId", adminRH, areaHandler.QuitarCoordinador},

		// Docentes.
		{fiber.MethodPost, "/docentes", adminRH, docenteHandler.Create},
		{fiber.MethodGet, "/docentes", todosRoles, docenteHandler.List},
		{fiber.MethodGet, "/docentes/plantilla", adminRH, docenteHandler.Plantilla},
		{fiber.MethodPost, "/docentes/import", adminRH, docenteHandler.Importar},
		{fiber.MethodGet, "/docentes/:id", todosRoles, docenteHandler.GetByID},
		{fiber.MethodPut, "/docentes/:id", adminRH, docenteHandler.Update},
		{fiber.MethodDelete, "/docentes/:id", adminRH, docenteHandler.Delete},

		// Periodos: las transiciones son administrativas.
		{fiber.MethodPost, "/periodos", adminRH, periodoHandler.Create},
		{fiber.MethodGet, "/periodos", todosRoles, periodoHandler.List},
		{fiber.MethodGet, "/periodos/:id", todosRoles, periodoHandler.GetByID},
		{fiber.MethodPatch, "/periodos/:id", adminRH, periodoHandler.Update},
		{fiber.MethodPost, "/periodos/:id/abrir", adminRH, periodoHandler.Abrir},
		{fiber.MethodPost, "/periodos/:id/cerrar", adminRH, periodoHandler.Cerrar},
		{fiber.MethodPost, "/periodos/:id/reportar", adminRH, periodoHandler.Reportar},

		// Cargas de horas: el envío de lotes es de coordinadores, y el
		// caso de uso los acota además a sus áreas asignadas.
		{fiber.MethodGet, "/carga-horas/plantillas", todosRoles, cargaHandler.Plantilla},
		{fiber.MethodPost, "/carga-horas/procesar", soloCoord, cargaHandler.Procesar},
		{fiber.MethodPost, "/carga-horas/procesar-individual", soloCoord, cargaHandler.ProcesarIndividual},
		{fiber.MethodPost, "/carga-horas/confirmar", soloCoord, cargaHandler.Confirmar},
		{fiber.MethodGet, "/carga-horas", todosRoles, cargaHandler.List},
		{fiber.MethodDelete, "/carga-horas/:id", todosRoles, cargaHandler.Delete},

		// Pagos y exportes: solo administrativos.
		{fiber.MethodGet, "/pagos/reporte", adminRH, pagosHandler.Reporte},
		{fiber.MethodGet, "/pagos/pivote", adminRH, pagosHandler.Pivote},
		{fiber.MethodGet, "/pagos/exportar/excel", adminRH, pagosHandler.ExportarExcel},
		{fiber.MethodGet, "/pagos/exportar/areas/zip", adminRH, pagosHandler.ExportarAreasZip},
		{fiber.MethodGet, "/pagos/exportar/areas/excel-multihojas", adminRH, pagosHandler.ExportarAreasMultihojas},
		{fiber.MethodGet, "/pagos/exportar/pdf", adminRH, pagosHandler.ExportarPDF},
	})
}
