package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"desktiles/internal/app"
	"desktiles/internal/config"
	"desktiles/internal/infrastructure/errors"
	"desktiles/internal/infrastructure/logging"
	"desktiles/internal/launcher"
	"desktiles/internal/platform"
	"desktiles/internal/toolkit/wailskit"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		settings   config.Settings
		logger     *logging.ZerologLogger
		configPath string
	)

	root := &cobra.Command{
		Use:           "desktiles",
		Short:         "Always-on-top desktop tiles that launch shell commands",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			settings, err = config.Load()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			logger = logging.NewLogger(os.Stderr, settings.LogLevel, logging.Format(settings.LogFormat))
			errors.SetDefaultRetryLogger(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = settings.Config
			}

			tiles, err := config.LoadTiles(configPath)
			if err != nil {
				logging.LogError(logger, err, "load_tiles", nil)
				return err
			}

			exe, err := os.Executable()
			if err != nil {
				logging.LogError(logger, err, "locate_executable", nil)
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			hosts := app.NewProcessHostLauncher(exe, nil, logger)
			return app.NewApp(tiles, hosts, logger).Run(ctx)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "tile file (.toml, .yaml); overrides DESKTILES_CONFIG")

	var payload string
	host := &cobra.Command{
		Use:    app.HostCommand,
		Short:  "Show a single tile (started by desktiles itself)",
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.DecodeTile(payload)
			if err != nil {
				logging.LogError(logger, err, "decode_tile", nil)
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			tileLogger := logger.With("tile", t.Label)
			spawner := launcher.NewShellSpawner(launcher.ParseShell(settings.Shell), tileLogger)
			tk := wailskit.New(tileLogger, platform.NewWindowHinter())

			if err := app.RunHost(ctx, t, tk, spawner, tileLogger); err != nil {
				logging.LogError(tileLogger, err, "run_host", nil)
				return err
			}
			return nil
		},
	}
	host.Flags().StringVar(&payload, app.TileFlag, "", "JSON encoded tile")
	_ = host.MarkFlagRequired(app.TileFlag)

	root.AddCommand(host)
	return root
}
