package app

import (
	"context"
	"fmt"

	"desktiles/internal/infrastructure/errors"
	"desktiles/internal/infrastructure/logging"
	"desktiles/internal/types"

	"golang.org/x/sync/errgroup"
)

// HostLauncher runs one tile until its window closes or ctx is cancelled
type HostLauncher interface {
	RunHost(ctx context.Context, t types.Tile) error
}

// App shows every configured tile and stays resident while any tile is open
type App struct {
	tiles  []types.Tile
	hosts  HostLauncher
	logger logging.Logger
}

// NewApp creates the application for the given tile list
func NewApp(tiles []types.Tile, hosts HostLauncher, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &App{
		tiles:  append([]types.Tile(nil), tiles...),
		hosts:  hosts,
		logger: logger,
	}
}

// Run starts a host per tile and waits for all of them. A host failing is
// fatal: the remaining hosts are stopped and the failure returned. Cancelling
// ctx stops every host and Run returns nil.
func (a *App) Run(ctx context.Context) error {
	if len(a.tiles) == 0 {
		return errors.NewTileError("run", fmt.Errorf("no tiles configured"), errors.ErrCodeConfig)
	}

	a.logger.Info("Starting tiles", "count", len(a.tiles))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range a.tiles {
		i, t := i, t
		g.Go(func() error {
			err := a.hosts.RunHost(gctx, t)
			if err == nil {
				a.logger.Info("Tile closed", "label", t.Label)
				return nil
			}
			if gctx.Err() != nil {
				// Stopped on purpose; the cause is reported elsewhere.
				return nil
			}
			logging.LogError(a.logger, err, "run_host", map[string]interface{}{
				"label": t.Label,
				"index": i,
			})
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	a.logger.Info("All tiles closed")
	return nil
}
