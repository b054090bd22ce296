package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SagarBajaj14/CelestAI.io/internal/pkg/logger"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("starting application",
		"store", a.Cfg.Store.Driver,
		"events", a.Cfg.Events.Sink,
		"archive", a.Cfg.S3 != nil && a.Cfg.S3.Enabled(),
	)

	deps, err := a.initDependencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to init dependencies: %w", err)
	}

	return a.runServices(ctx, deps)
}
