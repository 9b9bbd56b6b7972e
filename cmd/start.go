package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dorsabag/bucketListBackendDeploy/core/config"
	"github.com/dorsabag/bucketListBackendDeploy/core/loader"
	"github.com/dorsabag/bucketListBackendDeploy/core/logger"
	"github.com/dorsabag/bucketListBackendDeploy/core/middleware/rayid"
	"github.com/dorsabag/bucketListBackendDeploy/core/notion"

	"github.com/dorsabag/bucketListBackendDeploy/feature/bucketlist"
	"github.com/dorsabag/bucketListBackendDeploy/feature/images"
	"github.com/dorsabag/bucketListBackendDeploy/feature/live"
	"github.com/dorsabag/bucketListBackendDeploy/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appVersion = "1.0.0"

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bucket list server",
	Long:  `Starts the HTTP server, provisions missing tables and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Notion Client
		client := notion.NewClient(cfg.Notion, logg)

		// 4. Startup Report (feeds the health endpoint)
		report := status.NewReport()
		for _, missing := range missingConfig(cfg) {
			logg.Warn("Missing configuration value", zap.String("name", missing))
			report.AddMissingConfig(missing)
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		registry := live.NewRegistry()
		bl := bucketlist.NewFeature(client, cfg.Tables, cfg.Notion.ParentPageID, logg)
		mgr.Register(bl)
		mgr.Register(live.NewFeature(registry, bl.Service().Provisioner(), logg))
		mgr.Register(images.NewFeature(cfg.Notion.APIKey, cfg.Notion.Version, logg))
		mgr.Register(status.NewFeature(report, bl.Service(), appVersion, logg))

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

		// 3. CORS (browser frontend talks to this API directly)
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.AllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept",
		}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Provision missing tables
		result := bl.Service().Provisioner().InitializeAll(cmd.Context())
		report.SetInitialized(result.OK())
		if !result.OK() {
			errs := make(map[string]string, len(result.Errors))
			for cat, msg := range result.Errors {
				logg.Warn("Table provisioning failed",
					zap.String("category", string(cat)),
					zap.String("error", msg),
				)
				errs[string(cat)] = msg
			}
			report.SetProvisionErrors(errs)
		}
		for _, cat := range result.Created {
			logg.Info("Provisioned table", zap.String("category", string(cat)))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		registry.Clear()
		_ = app.Shutdown()
	},
}

// missingConfig lists configuration values required for full operation. The
// legacy table ids cannot be provisioned automatically, so their absence
// degrades health instead of crashing startup.
func missingConfig(cfg *config.Config) []string {
	var missing []string
	if cfg.Notion.APIKey == "" {
		missing = append(missing, "notion.api_key")
	}
	legacy := []struct {
		name string
		id   string
	}{
		{"tables.live_shows", cfg.Tables.LiveShows},
		{"tables.dining_out", cfg.Tables.DiningOut},
		{"tables.around_world", cfg.Tables.AroundWorld},
		{"tables.tv_shows", cfg.Tables.TVShows},
		{"tables.episodes", cfg.Tables.Episodes},
		{"tables.podcasts", cfg.Tables.Podcasts},
	}
	for _, t := range legacy {
		if t.id == "" {
			missing = append(missing, t.name)
		}
	}
	return missing
}

func init() {
	RootCmd.AddCommand(startCmd)
}
