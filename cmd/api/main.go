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

	"github.com/elzarapeimports/zarape-pos-api/internal/application/auth"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/clientes"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/inventario"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/reportes"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/ventas"
	infracfdi "github.com/elzarapeimports/zarape-pos-api/internal/infrastructure/cfdi"
	infraemail "github.com/elzarapeimports/zarape-pos-api/internal/infrastructure/email"
	infrapdf "github.com/elzarapeimports/zarape-pos-api/internal/infrastructure/pdf"
	"github.com/elzarapeimports/zarape-pos-api/internal/infrastructure/postgres"
	"github.com/elzarapeimports/zarape-pos-api/internal/infrastructure/rediscache"
	httpRouter "github.com/elzarapeimports/zarape-pos-api/internal/interfaces/http"
	"github.com/elzarapeimports/zarape-pos-api/pkg/config"
	"github.com/elzarapeimports/zarape-pos-api/pkg/logger"
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

	productoRepo := postgres.NewProductoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sembrar el contador de folios con el historial (no hace nada si ya existe)
	max, err := ventaRepo.MaxNumeroFactura()
	if err != nil {
		log.Fatal().Err(err).Msg("leer consecutivo de facturas")
	}
	if err := postgres.SeedFolios(ctx, pool, max); err != nil {
		log.Fatal().Err(err).Msg("sembrar folios")
	}

	// Cache de reportes: Redis si está configurado, noop si no
	var cache reportes.Cache = rediscache.NewNoop()
	if cfg.Redis.Addr != "" {
		redisCache, err := rediscache.New(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, reportes sin cache")
		} else {
			cache = redisCache
			defer redisCache.Close()
		}
	}

	ticketGen := infrapdf.NewTicketGenerator(cfg.Shop)
	xmlBuilder := infracfdi.NewXMLBuilder(cfg.Shop)
	var sender ventas.TicketSender
	if cfg.SMTP.Enabled() {
		sender = infraemail.NewSender(cfg.SMTP, cfg.Shop)
	} else {
		log.Info().Msg("SMTP no configurado, envío de tickets deshabilitado")
	}

	authUC := auth.NewAuthUseCase(usuarioRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	ventaUC := ventas.NewVentaUseCase(txRunner, ventaRepo, productoRepo, clienteRepo)
	ticketUC := ventas.NewTicketUseCase(ventaRepo, ticketGen, xmlBuilder, sender)
	productoUC := inventario.NewProductoUseCase(productoRepo)
	movUC := inventario.NewMovimientoUseCase(txRunner, movRepo)
	categoriaUC := inventario.NewCategoriaUseCase(categoriaRepo)
	proveedorUC := inventario.NewProveedorUseCase(proveedorRepo)
	clienteUC := clientes.NewClienteUseCase(clienteRepo)
	reporteUC := reportes.NewReporteUseCase(reporteRepo, cache, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Zarape POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		VentaUC:     ventaUC,
		TicketUC:    ticketUC,
		ProductoUC:  productoUC,
		MovUC:       movUC,
		CategoriaUC: categoriaUC,
		ProveedorUC: proveedorUC,
		ClienteUC:   clienteUC,
		ReporteUC:   reporteUC,
		JWTSecret:   cfg.JWT.Secret,
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
