package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"hrdocs/internal/cache"
	"hrdocs/internal/config"
	"hrdocs/internal/database"
	"hrdocs/internal/database/migration"
	"hrdocs/internal/folder"
	handlers "hrdocs/internal/http/handler"
	"hrdocs/internal/http/middleware"
	"hrdocs/internal/otel"
	"hrdocs/internal/repository/postgres"
	"hrdocs/internal/service"
	"hrdocs/internal/signer"
	"hrdocs/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	ctx := context.Background()

	// Tracing first so the DB driver and HTTP middleware pick up the provider.
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// The remote signing fallback is optional; without an endpoint the
	// URL resolver relies on the object store's presign alone.
	var sgn signer.Signer
	if cfg.Signer.Endpoint != "" {
		httpSigner, err := signer.NewHTTPSigner(cfg.Signer)
		if err != nil {
			log.Fatalf("failed to initialize signer: %v", err)
		}
		sgn = httpSigner
	}

	// Metrics registry shared by the HTTP middleware and the cache layer.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	cacheMetrics, err := cache.NewMetrics(reg)
	if err != nil {
		log.Fatalf("failed to register cache metrics: %v", err)
	}
	caches := cache.NewManager(cfg.Cache, cache.WithManagerMetrics(cacheMetrics))

	// Initialize repositories and services
	docRepo := postgres.NewDocumentPostgres(db)
	empRepo := postgres.NewEmployeePostgres(db)
	fetcher := folder.NewFetcher(docRepo, cfg.Fetch)

	docSvc := service.NewDocumentService(objStore, docRepo, caches)
	folderSvc := service.NewFolderService(fetcher, docRepo, empRepo, objStore, sgn, caches)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize prometheus middleware: %v", err)
	}

	// Register global middleware
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, docSvc, folderSvc)

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
