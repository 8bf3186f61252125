package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"schema-engine/core/loader"
	"schema-engine/core/logger"
	"schema-engine/core/middleware/auth"
	"schema-engine/core/middleware/rayid"
	"schema-engine/core/storage"

	"schema-engine/feature/integrity"
	"schema-engine/feature/schema"
	"schema-engine/feature/bulksync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "schema-engine/docs/swagger"
)

// @title Schema Engine API
// @version 1.0
// @description API for reconciling tabular schemas, assets and lineage into the metadata graph.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the schema engine server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger, store and engine
		svc, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := svc.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		cfg := svc.cfg

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 3. Initialize Storage (Optional, only bulk sync needs it)
		var client storage.Client
		if c, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Storage client unavailable, bulk sync disabled", zap.Error(err))
		} else {
			client = c
		}

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()
		syncSvc := bulksync.NewService(svc.engine, client, cfg.Storage.Bucket, cfg.Engine, svc.locks, svc.metrics, logg.Named("sync"))

		mgr.Register(schema.NewFeature(svc.engine, svc.registry, svc.locks, cfg.Server, logg))
		mgr.Register(bulksync.NewFeature(syncSvc, cfg.Server))
		mgr.Register(integrity.NewFeature(client, cfg.Storage.Bucket,
			[]string{cfg.Engine.SchemaPrefix, cfg.Engine.SnapshotPrefix},
			svc.db, svc.store, cfg.Server.UserHeader, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation and Metrics (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", svc.metrics.Handler())

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
