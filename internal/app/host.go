package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"

	"desktiles/internal/infrastructure/errors"
	"desktiles/internal/infrastructure/logging"
	"desktiles/internal/launcher"
	"desktiles/internal/tile"
	"desktiles/internal/toolkit"
	"desktiles/internal/types"
)

const (
	// HostCommand is the sub-command a tile host process runs
	HostCommand = "host"
	// TileFlag carries the JSON encoded tile to a host process
	TileFlag = "tile"

	// hostStopGrace is how long a cancelled host may take to exit before it is killed
	hostStopGrace = 3 * time.Second
)

// RunHost creates the tile's window on tk and runs the event loop until the
// window closes or ctx is cancelled.
func RunHost(ctx context.Context, t types.Tile, tk toolkit.Context, spawner launcher.Spawner, logger logging.Logger) error {
	factory := tile.NewFactory(tk, spawner, logger)

	if _, err := factory.Create(t); err != nil {
		return err
	}

	return tk.Run(ctx)
}

// EncodeTile serialises a tile for a host process' command line
func EncodeTile(t types.Tile) (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", errors.NewTileError("encode_tile", err, errors.ErrCodeInternal)
	}
	return string(data), nil
}

// DecodeTile parses the value produced by EncodeTile
func DecodeTile(s string) (types.Tile, error) {
	var t types.Tile
	if err := json.Unmarshal([]byte(s), &t); err != nil {
		return types.Tile{}, errors.NewTileError("decode_tile", err, errors.ErrCodeConfig)
	}
	return t, nil
}

// ProcessHostLauncher runs each tile in a child process of executable.
// Wails hosts one window per process, so every tile gets its own.
type ProcessHostLauncher struct {
	executable string
	args       []string
	logger     logging.Logger
}

// NewProcessHostLauncher creates a launcher that runs
// "<executable> <args...> host --tile <json>" for every tile
func NewProcessHostLauncher(executable string, args []string, logger logging.Logger) *ProcessHostLauncher {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &ProcessHostLauncher{
		executable: executable,
		args:       append([]string(nil), args...),
		logger:     logger,
	}
}

// RunHost starts the host process for t and waits for it to exit
func (p *ProcessHostLauncher) RunHost(ctx context.Context, t types.Tile) error {
	payload, err := EncodeTile(t)
	if err != nil {
		return err
	}

	args := append(append([]string(nil), p.args...), HostCommand, "--"+TileFlag, payload)
	cmd := exec.CommandContext(ctx, p.executable, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	cmd.Cancel = func() error {
		return interruptProcess(cmd.Process)
	}
	cmd.WaitDelay = hostStopGrace

	if err := cmd.Start(); err != nil {
		return errors.NewTileErrorWithContext("start_host", err, errors.ErrCodeToolkit,
			map[string]string{"label": t.Label})
	}

	p.logger.Debug("Tile host started", "label", t.Label, "pid", cmd.Process.Pid)

	if err := cmd.Wait(); err != nil {
		return errors.NewTileErrorWithContext("run_host",
			fmt.Errorf("tile host exited: %w", err),
			errors.ErrCodeToolkit,
			map[string]string{"label": t.Label})
	}
	return nil
}
