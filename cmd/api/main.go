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

	"github.com/tenaxis/tenaxis-api/internal/application/assignment"
	"github.com/tenaxis/tenaxis-api/internal/application/auth"
	"github.com/tenaxis/tenaxis-api/internal/application/orders"
	"github.com/tenaxis/tenaxis-api/internal/application/usecase"
	infrapdf "github.com/tenaxis/tenaxis-api/internal/infrastructure/pdf"
	"github.com/tenaxis/tenaxis-api/internal/infrastructure/postgres"
	httpRouter "github.com/tenaxis/tenaxis-api/internal/interfaces/http"
	"github.com/tenaxis/tenaxis-api/pkg/config"
	"github.com/tenaxis/tenaxis-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
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

	tenantRepo := postgres.NewTenantRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	zoneRepo := postgres.NewZoneRepository(pool)
	restrictionRepo := postgres.NewRestrictionRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	typeRepo := postgres.NewServiceTypeRepository(pool)
	consignmentRepo := postgres.NewConsignmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de asignación: lee por su propio store y no escribe nada.
	engine := assignment.NewEngine(postgres.NewAssignmentStore(pool), assignment.Policy{
		PermitMissingPlate: cfg.Assignment.PermitMissingPlate,
	})
	scorer := postgres.NewClientScorer(clientRepo)

	createOrderUC := orders.NewCreateOrderUseCase(txRunner, engine, cfg.Assignment.DefaultDurationMinutes)
	manageOrderUC := orders.NewManageOrderUseCase(orderRepo, scorer)
	orderPDFUC := orders.NewOrderPDFUseCase(
		orderRepo, companyRepo, clientRepo, addressRepo, membershipRepo, typeRepo,
		infrapdf.NewOrderTicketGenerator(),
	)

	companyUC := usecase.NewCompanyUseCase(companyRepo, tenantRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, addressRepo)
	membershipUC := usecase.NewMembershipUseCase(membershipRepo, zoneRepo)
	zoneUC := usecase.NewZoneUseCase(zoneRepo)
	restrictionUC := usecase.NewRestrictionUseCase(restrictionRepo)
	consignmentUC := usecase.NewConsignmentUseCase(consignmentRepo, membershipRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, tenantRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Tenaxis API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		ClientUC:      clientUC,
		MembershipUC:  membershipUC,
		ZoneUC:        zoneUC,
		RestrictionUC: restrictionUC,
		ConsignmentUC: consignmentUC,
		CreateOrder:   createOrderUC,
		ManageOrder:   manageOrderUC,
		OrderPDF:      orderPDFUC,
		JWTSecret:     cfg.JWT.Secret,
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
