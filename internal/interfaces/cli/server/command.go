package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/brt06a/Testv5/internal/infrastructure/config"
	"github.com/brt06a/Testv5/internal/infrastructure/database"
	"github.com/brt06a/Testv5/internal/infrastructure/migration"
	httpRouter "github.com/brt06a/Testv5/internal/interfaces/http"
	"github.com/brt06a/Testv5/internal/shared/biztime"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

const shutdownTimeout = 30 * time.Second

var (
	env         string
	configPath  string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the PromotionX HTTP server and the pending payment reconciler.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" && env == "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Telegram.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	log.Infow("starting server",
		"mode", cfg.Server.Mode,
		"gateway", cfg.Payment.Gateway,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	db, err := database.Init(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if autoMigrate {
		if cfg.Server.Mode == gin.ReleaseMode {
			log.Warnw("auto-migration is enabled in release mode")
		}
		manager, err := migration.NewManager(cfg.Database.Driver)
		if err != nil {
			return err
		}
		if err := manager.Migrate(db); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := httpRouter.NewContainer(ctx, db, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	router := httpRouter.NewRouter(container)
	router.SetupRoutes()
	router.StartPaymentScheduler(ctx)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server listening",
			"address", cfg.Server.GetAddr(),
			"public_base_url", cfg.Server.GetPublicBaseURL())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			router.Shutdown(context.Background())
			return fmt.Errorf("failed to start server: %w", err)
		}
	}

	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}
	router.Shutdown(shutdownCtx)

	log.Infow("server exited gracefully")
	return nil
}
