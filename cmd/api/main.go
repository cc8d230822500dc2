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
	"github.com/tu-usuario/retail-boss/internal/application/billing"
	"github.com/tu-usuario/retail-boss/internal/application/inventory"
	"github.com/tu-usuario/retail-boss/internal/application/sales"
	"github.com/tu-usuario/retail-boss/internal/application/usecase"
	infrapdf "github.com/tu-usuario/retail-boss/internal/infrastructure/pdf"
	"github.com/tu-usuario/retail-boss/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/retail-boss/internal/interfaces/http"
	"github.com/tu-usuario/retail-boss/pkg/config"
	"github.com/tu-usuario/retail-boss/pkg/logger"
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

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.Store.Name)

	var deps httpRouter.RouterDeps
	if cfg.DB.Configured() {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		productRepo := postgres.NewProductRepository(pool)
		balanceRepo := postgres.NewBalanceRepository(pool)
		ledgerRepo := postgres.NewLedgerRepository(pool)
		billRepo := postgres.NewBillRepository(pool)
		notificationRepo := postgres.NewNotificationRepository(pool)
		analyticsRepo := postgres.NewAnalyticsRepository(pool)
		txRunner := postgres.NewTxRunner(pool)

		billNumbers := billing.NewNumberGenerator(billRepo)

		deps = httpRouter.RouterDeps{
			ProductUC:      usecase.NewProductUseCase(productRepo, balanceRepo),
			SalesUC:        sales.NewCreateSaleUseCase(txRunner, productRepo, balanceRepo, billRepo, billNumbers, pdfGenerator),
			InventoryUC:    inventory.NewUseCase(txRunner, productRepo, balanceRepo, ledgerRepo),
			DashboardUC:    usecase.NewDashboardUseCase(analyticsRepo),
			AnalyticsUC:    usecase.NewAnalyticsUseCase(analyticsRepo),
			NotificationUC: usecase.NewNotificationUseCase(notificationRepo),
			VoiceUC:        usecase.NewVoiceUseCase(),
		}
	} else {
		// Modo demostración: sin base de datos, las lecturas sirven payloads
		// de muestra y las escrituras responden 503.
		log.Warn().Msg("sin DATABASE_URL ni DB_HOST: arrancando en modo demostración")
		deps = httpRouter.RouterDeps{
			ProductUC:      usecase.NewProductUseCase(nil, nil),
			SalesUC:        sales.NewCreateSaleUseCase(nil, nil, nil, nil, billing.NewNumberGenerator(nil), pdfGenerator),
			InventoryUC:    inventory.NewUseCase(nil, nil, nil, nil),
			DashboardUC:    usecase.NewDashboardUseCase(nil),
			AnalyticsUC:    usecase.NewAnalyticsUseCase(nil),
			NotificationUC: usecase.NewNotificationUseCase(nil),
			VoiceUC:        usecase.NewVoiceUseCase(),
		}
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
		Title:    "Retail Boss API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":     "ok",
			"service":    cfg.App.Name,
			"store_mode": cfg.DB.Configured(),
		})
	})

	httpRouter.Router(app, deps)

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
