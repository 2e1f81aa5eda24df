// Package tile builds the clickable desktop tiles.
package tile

import (
	"fmt"

	"desktiles/internal/infrastructure/errors"
	"desktiles/internal/infrastructure/logging"
	"desktiles/internal/launcher"
	"desktiles/internal/toolkit"
	"desktiles/internal/types"
)

// TitlePrefix starts every tile window title
const TitlePrefix = "desktiles: "

// Factory creates tiles on a toolkit context
type Factory struct {
	tk      toolkit.Context
	spawner launcher.Spawner
	logger  logging.Logger
}

// NewFactory creates a tile factory bound to a toolkit context
func NewFactory(tk toolkit.Context, spawner launcher.Spawner, logger logging.Logger) *Factory {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Factory{
		tk:      tk,
		spawner: spawner,
		logger:  logger,
	}
}

// Tile is a shown tile window and the command it launches
type Tile struct {
	label   string
	command string
	window  toolkit.Window
	spawner launcher.Spawner
	logger  logging.Logger
}

// WindowOptions returns the window description used for t
func WindowOptions(t types.Tile, content string) toolkit.WindowOptions {
	return toolkit.WindowOptions{
		Title:       TitlePrefix + t.Label,
		Width:       Size,
		Height:      Size,
		X:           t.X,
		Y:           t.Y,
		Decorated:   false,
		SkipTaskbar: true,
		KeepAbove:   true,
		Sticky:      true,
		Resizable:   false,
		Content:     content,
	}
}

// Create builds the window for t and shows it. Clicking the tile launches
// t.Command. The only error is a failure of the toolkit itself.
func (f *Factory) Create(t types.Tile) (*Tile, error) {
	content, err := Render(t.Label, t.Glyph)
	if err != nil {
		return nil, errors.NewTileErrorWithContext("render_tile", err, errors.ErrCodeInternal,
			map[string]string{"label": t.Label})
	}

	tile := &Tile{
		label:   t.Label,
		command: t.Command,
		spawner: f.spawner,
		logger:  f.logger,
	}

	window, err := f.tk.NewWindow(WindowOptions(t, content), tile.Activate)
	if err != nil {
		return nil, errors.NewTileErrorWithContext("create_tile",
			fmt.Errorf("create window: %w", err),
			errors.ErrCodeToolkit,
			map[string]string{"label": t.Label})
	}
	tile.window = window

	f.logger.Info("Tile created",
		"label", t.Label,
		"x", t.X,
		"y", t.Y,
		"window_id", window.ID())

	return tile, nil
}

// Activate is the click handler: it hands the command to the spawner and
// returns. Launch failures are logged and otherwise ignored.
func (t *Tile) Activate() {
	if err := t.spawner.Spawn(t.command); err != nil {
		t.logger.Debug("Launch failed", "label", t.label, "error", err.Error())
	}
}

// Window returns the tile's window
func (t *Tile) Window() toolkit.Window {
	return t.window
}

// Label returns the tile's label
func (t *Tile) Label() string {
	return t.label
}

// Command returns the command launched on activation
func (t *Tile) Command() string {
	return t.command
}
