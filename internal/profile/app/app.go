package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/redditage/internal/profile/http"
	"github.com/aussiebroadwan/redditage/internal/profile/metrics"
	"github.com/aussiebroadwan/redditage/internal/profile/service"
	"github.com/aussiebroadwan/redditage/pkg/httpx"
	"github.com/aussiebroadwan/redditage/pkg/redditsdk"
	"github.com/aussiebroadwan/redditage/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	reddit *redditsdk.Client

	tokenProvider  *service.TokenProvider
	profileService *service.ProfileService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "redditage",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	app.initReddit()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("redditage starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	app.logger.Info("shutting down redditage...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
		return err
	}

	app.logger.Info("redditage stopped")
	return nil
}

// initReddit builds the upstream client. Every outbound call is instrumented.
func (app *Application) initReddit() {
	client := redditsdk.NewClient(app.cfg.RedditUserAgent)
	client.TokenURL = app.cfg.RedditTokenURL
	client.APIBaseURL = app.cfg.RedditAPIBaseURL
	client.HTTPClient = &http.Client{
		Timeout:   2 * app.cfg.UpstreamTimeout,
		Transport: metrics.InstrumentTransport(http.DefaultTransport),
	}
	app.reddit = client
}

// initServices initializes the token provider and profile fetcher
func (app *Application) initServices() {
	app.tokenProvider = &service.TokenProvider{
		Client:       app.reddit,
		ClientID:     app.cfg.RedditClientID,
		ClientSecret: app.cfg.RedditClientSecret,
		Timeout:      app.cfg.UpstreamTimeout,
		ExpiryBuffer: app.cfg.TokenExpiryBuffer,
	}

	app.profileService = &service.ProfileService{
		Tokens:  app.tokenProvider,
		Users:   app.reddit,
		Timeout: app.cfg.UpstreamTimeout,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	cors := httpx.DefaultCORS
	if len(app.cfg.CORSAllowedOrigins) > 0 {
		cors.AllowedOrigins = app.cfg.CORSAllowedOrigins
	}

	router := httpapi.NewRouter(cors, app.logger)
	router.ProfileService = app.profileService
	if app.cfg.RateLimitEnabled {
		limit := app.cfg.APILimit
		router.APILimit = &limit
	} else {
		app.logger.Warn("rate limiting disabled")
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
