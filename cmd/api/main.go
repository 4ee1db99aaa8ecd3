package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"medimate/docs"
	"medimate/internal/config"
	"medimate/internal/database"
	"medimate/internal/database/migration"
	handlers "medimate/internal/http/handler"
	"medimate/internal/http/middleware"
	"medimate/internal/logger"
	"medimate/internal/otel"
	"medimate/internal/repository/postgres"
	"medimate/internal/service"
	"medimate/internal/storage"
)

const serviceName = "medimate"

// @title MediMate API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()
	loc := cfg.Location()
	log := logger.New(os.Stdout, cfg.LogLevel, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, serviceName, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.WithError(err).Warn("tracing_shutdown_failed")
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	// History export is optional; without MinIO the export route answers 503.
	var store storage.Storage
	if cfg.MinIO.Enabled() {
		store, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize object storage")
		}
	} else {
		log.WithField("component", "storage").Info("history export disabled: MINIO_ENDPOINT not set")
	}

	medRepo := postgres.NewMedicationPostgres(db)
	doseRepo := postgres.NewDoseLogPostgres(db)
	medSvc := service.NewMedicationService(medRepo, doseRepo, loc)
	historySvc := service.NewHistoryService(doseRepo, store, loc)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.WithError(err).Fatal("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	app.Get("/metrics", prom.Exposition())

	handlers.RegisterRoutes(app, handlers.Dependencies{
		DB:          db,
		Medications: medSvc,
		History:     historySvc,
		Info: handlers.AppInfo{
			Name:        cfg.AppName,
			Version:     cfg.Version,
			Description: "Track medications, log doses and review history.",
		},
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("server_shutdown_failed")
		}
	}()

	addr := ":" + cfg.Port
	log.WithFields(logrus.Fields{"addr": addr, "timezone": loc.String()}).Info("server starting")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
