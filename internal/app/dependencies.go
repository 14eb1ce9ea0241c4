package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/travelbot-console/internal/domain/directory"
	"github.com/FACorreiaa/travelbot-console/internal/domain/gallery"
	"github.com/FACorreiaa/travelbot-console/internal/domain/mapsync"
	"github.com/FACorreiaa/travelbot-console/internal/domain/orchestrator"
	"github.com/FACorreiaa/travelbot-console/internal/presenter"
	"github.com/FACorreiaa/travelbot-console/internal/transport"
	"github.com/FACorreiaa/travelbot-console/pkg/config"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	Client    *transport.Client
	Console   *presenter.Console
	Directory directory.Service
	MapSync   *mapsync.Synchronizer
	Gallery   gallery.Service
	Orch      orchestrator.Service
}

// InitDependencies wires the whole client: transport, presenter, map
// synchronizer, directory, gallery and orchestrator.
func InitDependencies(cfg *config.Config, logger *slog.Logger, out io.Writer) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	client, err := transport.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init transport client: %w", err)
	}
	deps.Client = client

	deps.Console = presenter.NewConsole(out)
	deps.MapSync = mapsync.NewSynchronizer(
		presenter.NewConsoleMapProvider(out),
		deps.Console,
		cfg.Map.DefaultZoom,
		logger,
	)
	deps.Directory = directory.NewCityDirectory(client, client, logger)
	deps.Gallery = gallery.NewPlanGallery(deps.MapSync, logger)
	deps.Orch = orchestrator.NewRequestOrchestrator(client, deps.Gallery, deps.Console, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// Startup runs the health check and the city directory load concurrently;
// the two touch disjoint presentation regions and neither failure is fatal.
func (d *Dependencies) Startup(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		status, err := d.Client.Health(ctx)
		if err != nil {
			d.Logger.Warn("health check failed", slog.Any("error", err))
			d.Console.ShowBackendStatus(status, false)
			return nil
		}
		d.Console.ShowBackendStatus(status, true)
		return nil
	})

	g.Go(func() error {
		if err := d.Directory.Refresh(ctx); err != nil {
			d.Logger.Warn("city directory load failed", slog.Any("error", err))
		}
		return nil
	})

	// Both goroutines swallow their errors: a degraded backend still gets a
	// usable session.
	_ = g.Wait()
}
