package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/folio/internal/config"
	"github.com/MrSnakeDoc/folio/internal/httpserver"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/render"
	"github.com/MrSnakeDoc/folio/internal/scheduler"
	"github.com/MrSnakeDoc/folio/internal/session"
	"github.com/MrSnakeDoc/folio/internal/utils"
	"github.com/MrSnakeDoc/folio/internal/version"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	content *Content
	sweeper *scheduler.SessionSweeper
}

// New wires the server. Storage is opened here so a bad backend fails
// startup before the listener comes up.
func New(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	c, err := OpenContent(ctx, cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	renderer, err := render.New()
	if err != nil {
		utils.CloseLogged(c, "storage", loggerClient)
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	sessions := session.NewRegistry()
	sweeper := scheduler.NewSessionSweeper(
		sessions,
		loggerClient,
		cfg.SessionSweepInterval,
		cfg.SessionIdleTTL,
	)

	if cfg.AdminUsername == "admin" && cfg.AdminPassword == "admin" {
		loggerClient.Warn("admin editor uses the default admin/admin credentials")
	}

	// Dependencies passed to routes.
	d := deps.Deps{
		Logger:           loggerClient,
		StartTime:        time.Now(),
		Version:          version.Version,
		Commit:           version.Commit,
		BuildDate:        version.BuildDate,
		GoVersion:        version.GoVersion,
		TimeNow:          time.Now,
		Content:          c.Store,
		Persistence:      c.Persistence,
		Renderer:         renderer,
		Sessions:         sessions,
		Credentials:      session.Credentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword},
		SecureCookies:    cfg.SecureCookies,
		LoginBurst:       cfg.LoginBurst,
		LoginRefillPerMn: cfg.LoginRefillPerMn,
		AllowedHosts:     cfg.AllowedHosts,
		AllowedCIDRS:     cfg.AllowedCIDRS,
		TrustProxy:       cfg.TrustProxy,
	}

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		server:  httpserver.New(cfg, loggerClient, d),
		content: c,
		sweeper: sweeper,
	}, nil
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (a *App) Run() error {
	a.logger.Infof("🚀 Starting folio %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info("build info",
		logger.String("version", version.Version),
		logger.String("commit", version.Commit),
		logger.String("built", version.BuildDate),
		logger.String("go", version.GoVersion),
		logger.String("storage", a.cfg.Storage))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.sweeper.Start(ctx)
	a.logger.Info("session sweeper started",
		logger.Duration("interval", a.cfg.SessionSweepInterval),
		logger.Duration("idle_ttl", a.cfg.SessionIdleTTL))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.sweeper.Stop()
		utils.CloseLogged(a.content, "storage", a.logger)
		return err
	}

	a.sweeper.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	utils.CloseLogged(a.content, "storage", a.logger)

	a.logger.Info("✅ folio stopped cleanly")
	return nil
}
