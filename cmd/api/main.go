package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sisacad/nomina-docentes-api/internal/application/auth"
	"github.com/sisacad/nomina-docentes-api/internal/application/carga"
	"github.com/sisacad/nomina-docentes-api/internal/application/pagos"
	"github.com/sisacad/nomina-docentes-api/internal/application/periodo"
	"github.com/sisacad/nomina-docentes-api/internal/application/usecase"
	infraexcel "github.com/sisacad/nomina-docentes-api/internal/infrastructure/excel"
	infrapdf "github.com/sisacad/nomina-docentes-api/internal/infrastructure/pdf"
	"github.com/sisacad/nomina-docentes-api/internal/infrastructure/postgres"
	httpRouter "github.com/sisacad/nomina-docentes-api/internal/interfaces/http"
	"github.com/sisacad/nomina-docentes-api/pkg/config"
	"github.com/sisacad/nomina-docentes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	areaRepo := postgres.NewAreaRepository(pool)
	coordRepo := postgres.NewCoordAreaRepository(pool)
	docenteRepo := postgres.NewDocenteRepository(pool)
	periodoRepo := postgres.NewPeriodoRepository(pool)
	cargaRepo := postgres.NewCargaHorasRepository(pool)
	pagosRepo := postgres.NewPagosRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, auditoriaRepo)
	areaUC := usecase.NewAreaUseCase(areaRepo, coordRepo, usuarioRepo, auditoriaRepo)
	docenteUC := usecase.NewDocenteUseCase(docenteRepo, auditoriaRepo)
	periodoUC := periodo.NewUseCase(periodoRepo, auditoriaRepo)
	cargaUC := carga.NewUseCase(
		docenteRepo, periodoRepo, areaRepo, coordRepo,
		cargaRepo, pagosRepo, auditoriaRepo, txRunner,
	)
	pagosUC := pagos.NewUseCase(
		pagosRepo, periodoRepo, areaRepo,
		infraexcel.NewGenerator(), infrapdf.NewMarotoPDFGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los exportes XLSX/PDF pueden tardar
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nómina Docentes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Archivos subidos, solo lectura.
	app.Static("/uploads", cfg.Uploads.Dir, fiber.Static{Browse: false})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UsuarioUC:  usuarioUC,
		AreaUC:     areaUC,
		DocenteUC:  docenteUC,
		PeriodoUC:  periodoUC,
		CargaUC:    cargaUC,
		PagosUC:    pagosUC,
		JWTSecret:  cfg.JWT.Secret,
		UploadsDir: cfg.Uploads.Dir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
