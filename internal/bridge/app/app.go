package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/statefi/bridge/internal/bridge/http"
	"github.com/statefi/bridge/internal/bridge/service"
	"github.com/statefi/bridge/internal/bridge/store"
	"github.com/statefi/bridge/internal/bridge/store/drivers/sqlite"
	"github.com/statefi/bridge/pkg/idx"
	"github.com/statefi/bridge/pkg/jwtx"
	"github.com/statefi/bridge/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the bridge service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer *jwtx.Signer
	keys   *jwtx.KeySet

	// Services
	bootstrapService  *service.BootstrapService
	accountService    *service.AccountService
	authService       *service.AuthService
	profileService    *service.ProfileService
	vaultService      *service.VaultService
	registryService   *service.RegistryService
	depositService    *service.DepositService
	withdrawalService *service.WithdrawalService
	treasuryService   *service.TreasuryService
	monitorService    *service.MonitorService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "bridge-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initKeys(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start the stuck settlement monitor
	app.monitorService.Start()

	app.logger.Info("bridge service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down bridge service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the stuck settlement monitor
	app.monitorService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("bridge service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initKeys generates an ephemeral signing key for this process. Tokens are
// short lived, so losing the key on restart only forces a re-issue.
func (app *Application) initKeys() error {
	signer, err := jwtx.NewSigner(string(idx.New()))
	if err != nil {
		return fmt.Errorf("failed to generate signing key: %w", err)
	}
	app.signer = signer

	app.keys = jwtx.NewKeySet()
	if err := app.keys.AddSigner(signer); err != nil {
		return fmt.Errorf("failed to register signing key: %w", err)
	}

	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}

	app.accountService = &service.AccountService{Store: app.db}
	app.authService = &service.AuthService{
		Store:  app.db,
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
		TTL:    jwtx.DefaultAccessTokenTTL,
	}

	app.profileService = &service.ProfileService{Store: app.db}
	app.vaultService = &service.VaultService{Store: app.db}
	app.registryService = &service.RegistryService{Store: app.db}
	app.depositService = &service.DepositService{Store: app.db}
	app.withdrawalService = &service.WithdrawalService{Store: app.db}
	app.treasuryService = &service.TreasuryService{Store: app.db}

	app.monitorService = service.NewMonitorService(
		app.db,
		app.logger,
		app.cfg.MonitorInterval,
		app.cfg.MonitorMaxAge,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		jwtx.NewVerifier(app.keys, app.cfg.Issuer),
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.BootstrapService = app.bootstrapService
	router.AccountService = app.accountService
	router.AuthService = app.authService
	router.ProfileService = app.profileService
	router.VaultService = app.vaultService
	router.RegistryService = app.registryService
	router.DepositService = app.depositService
	router.WithdrawalService = app.withdrawalService
	router.TreasuryService = app.treasuryService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
