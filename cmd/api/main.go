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
	"github.com/robfig/cron/v3"

	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	appbackup "github.com/jhoicas/PuntoVenta-api/internal/application/backup"
	"github.com/jhoicas/PuntoVenta-api/internal/application/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/application/catalog"
	"github.com/jhoicas/PuntoVenta-api/internal/application/checkout"
	"github.com/jhoicas/PuntoVenta-api/internal/application/directory"
	"github.com/jhoicas/PuntoVenta-api/internal/application/inventory"
	"github.com/jhoicas/PuntoVenta-api/internal/application/scope"
	infrabackup "github.com/jhoicas/PuntoVenta-api/internal/infrastructure/backup"
	"github.com/jhoicas/PuntoVenta-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/PuntoVenta-api/internal/infrastructure/pdf"
	"github.com/jhoicas/PuntoVenta-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/PuntoVenta-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/PuntoVenta-api/internal/interfaces/http"
	"github.com/jhoicas/PuntoVenta-api/pkg/config"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sesiones de carrito: Redis si está configurado, si no en memoria.
	var sessions cart.SessionStore
	if cfg.Redis.Addr != "" {
		client, err := infraredis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		sessions = infraredis.NewCartStore(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sesiones de carrito en Redis")
	} else {
		sessions = memory.NewCartStore()
		log.Info().Msg("sesiones de carrito en memoria")
	}

	cartUC := cart.NewUseCase(sessions, productRepo, cfg.POS.Currency)
	ticketGenerator := infrapdf.NewMarotoTicketGenerator(cfg.App.Name)
	checkoutUC := checkout.NewUseCase(
		txRunner, sessions, cartUC, accountRepo, customerRepo, txRepo,
		ticketGenerator,
		checkout.Policy{AllowOversell: cfg.POS.AllowOversell},
		log,
	)
	catalogUC := catalog.NewUseCase(productRepo, itemRepo)
	inventoryUC := inventory.NewUseCase(itemRepo)
	scopeUC := scope.NewUseCase(itemRepo, txRepo)
	directoryUC := directory.NewUseCase(customerRepo, accountRepo, branchRepo)
	authUC := auth.NewUseCase(staffRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	cloud := infrabackup.NewHTTPBackup(cfg.Backup.Endpoint, cfg.Backup.APIKey)
	backupUC := appbackup.NewUseCase(productRepo, itemRepo, txRepo, cloud, log)

	// Push periódico del respaldo si hay endpoint y expresión cron.
	if cfg.Backup.Endpoint != "" && cfg.Backup.Cron != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.Backup.Cron, func() {
			if err := backupUC.Sync(context.Background()); err != nil {
				log.Warn().Err(err).Msg("respaldo programado falló")
			}
		}); err != nil {
			log.Fatal().Err(err).Str("cron", cfg.Backup.Cron).Msg("expresión cron inválida")
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Info().Str("cron", cfg.Backup.Cron).Msg("respaldo programado activo")
	}

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		InventoryUC: inventoryUC,
		CartUC:      cartUC,
		CheckoutUC:  checkoutUC,
		ScopeUC:     scopeUC,
		DirectoryUC: directoryUC,
		BackupUC:    backupUC,
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
