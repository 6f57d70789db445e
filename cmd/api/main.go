package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/seiwa/repasse-api/internal/application/auth"
	"github.com/seiwa/repasse-api/internal/application/usecase"
	"github.com/seiwa/repasse-api/internal/infrastructure/postgres"
	httpRouter "github.com/seiwa/repasse-api/internal/interfaces/http"
	"github.com/seiwa/repasse-api/pkg/config"
	"github.com/seiwa/repasse-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	doctorRepo := postgres.NewDoctorRepository(pool)
	hospitalRepo := postgres.NewHospitalRepository(pool)
	linkRepo := postgres.NewDoctorHospitalRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	repasseRepo := postgres.NewRepasseRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	doctorUC := usecase.NewDoctorUseCase(doctorRepo)
	hospitalUC := usecase.NewHospitalUseCase(hospitalRepo)
	linkUC := usecase.NewDoctorHospitalUseCase(linkRepo, doctorRepo, hospitalRepo)
	productionUC := usecase.NewProductionUseCase(productionRepo, doctorRepo, hospitalRepo)
	repasseUC := usecase.NewRepasseUseCase(repasseRepo, productionRepo, doctorRepo, hospitalRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	prometheus := fiberprometheus.New(cfg.App.Name)
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger UI em local: http://localhost:<port>/docs
	if !httpRouter.RegisterSwagger(app, "./docs/swagger.json", "Repasse API") {
		log.Warn().Str("file", "./docs/swagger.json").Msg("swagger.json ausente, UI de documentação desabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		DoctorUC:         doctorUC,
		HospitalUC:       hospitalUC,
		DoctorHospitalUC: linkUC,
		ProductionUC:     productionUC,
		RepasseUC:        repasseUC,
		JWTSecret:        cfg.JWT.Secret,
		Scope:            cfg.Scope,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
