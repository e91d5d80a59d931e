package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	appauthz "github.com/jhoicas/Backoffice-api/internal/application/authz"
	"github.com/jhoicas/Backoffice-api/internal/application/orders"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Backoffice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
	"github.com/jhoicas/Backoffice-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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

	met := metrics.New()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	authzUC := appauthz.NewAuthorizeUseCase(userRepo, roleRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo, storeRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo, permissionRepo)
	permissionUC := usecase.NewPermissionUseCase(permissionRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	productUC := usecase.NewProductUseCase(productRepo, storeRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, storeRepo)
	leadUC := usecase.NewLeadUseCase(leadRepo)

	createOrderUC := orders.NewCreateOrderUseCase(txRunner, customerRepo, orderRepo, met)

	// PDF: resumen imprimible de la orden
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	orderPDFUC := orders.NewPDFUseCase(orderRepo, storeRepo, customerRepo, pdfGenerator)

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
		Title:    "Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		AuthzUC:      authzUC,
		UserUC:       userUC,
		RoleUC:       roleUC,
		PermissionUC: permissionUC,
		StoreUC:      storeUC,
		ProductUC:    productUC,
		CustomerUC:   customerUC,
		CreateOrder:  createOrderUC,
		OrderPDF:     orderPDFUC,
		LeadUC:       leadUC,
		Metrics:      met,
		JWTSecret:    cfg.JWT.Secret,
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
