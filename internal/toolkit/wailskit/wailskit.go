// Package wailskit implements toolkit.Context on Wails v2.
//
// Wails v2 hosts a single window per process, so a Toolkit accepts exactly
// one NewWindow call. The window content is served from an in-memory asset
// handler and its clickable area calls the bound Bridge.
package wailskit

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"desktiles/internal/infrastructure/errors"
	"desktiles/internal/infrastructure/logging"
	"desktiles/internal/platform"
	"desktiles/internal/toolkit"

	"github.com/wailsapp/wails/v2"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	winopts "github.com/wailsapp/wails/v2/pkg/options/windows"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// ProgramName identifies the application to the desktop environment
const ProgramName = "desktiles"

// bridgeScript connects the page's tileActivate() to the bound Bridge
const bridgeScript = `<script>window.tileActivate = function () { return window.go.wailskit.Bridge.Activate(); };</script>`

// Bridge is bound into the page; Activate runs the window's callback.
// Wails invokes bound methods concurrently, so activations are serialised.
type Bridge struct {
	mu         sync.Mutex
	onActivate func()
}

// Activate runs the activation callback to completion
func (b *Bridge) Activate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.onActivate != nil {
		b.onActivate()
	}
}

// Window is the single window of a Toolkit
type Window struct {
	opts    toolkit.WindowOptions
	bridge  *Bridge
	visible atomic.Bool
}

func (w *Window) ID() int { return 1 }
func (w *Window) Options() toolkit.WindowOptions { return w.opts }

// Visible reports whether the page has been loaded into the shown window
func (w *Window) Visible() bool {
	return w.visible.Load()
}

// Toolkit is a Wails backed toolkit.Context
type Toolkit struct {
	logger logging.Logger
	hinter platform.WindowHinter
	retry  *errors.RetryConfig

	mu     sync.Mutex
	window *Window

	// seams over the Wails entry points
	run         func(*options.App) error
	setPosition func(ctx context.Context, x, y int)
	quit        func(ctx context.Context)
}

// New creates a Wails toolkit. hinter applies the window states Wails does not expose.
func New(logger logging.Logger, hinter platform.WindowHinter) *Toolkit {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if hinter == nil {
		hinter = platform.NewWindowHinter()
	}
	return &Toolkit{
		logger:      logger,
		hinter:      hinter,
		retry:       errors.DefaultRetryConfig(),
		run:         wails.Run,
		setPosition: runtime.WindowSetPosition,
		quit:        runtime.Quit,
	}
}

// NewWindow registers the process' only window. It is shown when Run starts.
func (t *Toolkit) NewWindow(opts toolkit.WindowOptions, onActivate func()) (toolkit.Window, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.window != nil {
		return nil, errors.NewTileErrorWithContext("new_window",
			fmt.Errorf("wails hosts a single window per process"),
			errors.ErrCodeToolkit,
			map[string]string{"title": opts.Title})
	}

	t.window = &Window{
		opts:   opts,
		bridge: &Bridge{onActivate: onActivate},
	}
	return t.window, nil
}

// Run shows the window and blocks in the Wails event loop until the window
// is closed or ctx is cancelled.
func (t *Toolkit) Run(ctx context.Context) error {
	t.mu.Lock()
	w := t.window
	t.mu.Unlock()

	if w == nil {
		return errors.NewTileError("run", fmt.Errorf("no window created"), errors.ErrCodeToolkit)
	}

	if err := t.run(t.appOptions(ctx, w)); err != nil {
		return errors.NewTileErrorWithContext("run", err, errors.ErrCodeToolkit,
			map[string]string{"title": w.opts.Title})
	}
	return nil
}

func (t *Toolkit) appOptions(ctx context.Context, w *Window) *options.App {
	opts := w.opts

	app := &options.App{
		Title:            opts.Title,
		Width:            opts.Width,
		Height:           opts.Height,
		DisableResize:    !opts.Resizable,
		Frameless:        !opts.Decorated,
		AlwaysOnTop:      opts.KeepAbove,
		StartHidden:      false,
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		AssetServer: &assetserver.Options{
			Handler: contentHandler(opts.Content),
		},
		Logger:   logging.NewWailsLoggerAdapter(t.logger),
		LogLevel: wailslogger.INFO,
		OnStartup: func(wctx context.Context) {
			t.startup(ctx, wctx, w)
		},
		OnDomReady: func(wctx context.Context) {
			t.domReady(wctx, w)
		},
		OnShutdown: func(context.Context) {
			w.visible.Store(false)
		},
		WindowStartState: options.Normal,
		Bind: []interface{}{
			w.bridge,
		},
		Linux: &linux.Options{
			ProgramName: ProgramName,
		},
		Windows: &winopts.Options{
			DisableWindowIcon: true,
		},
	}

	if !opts.Resizable {
		app.MinWidth, app.MaxWidth = opts.Width, opts.Width
		app.MinHeight, app.MaxHeight = opts.Height, opts.Height
	}

	return app
}

// startup positions the window and ties the loop's lifetime to ctx
func (t *Toolkit) startup(ctx, wctx context.Context, w *Window) {
	t.setPosition(wctx, w.opts.X, w.opts.Y)

	go func() {
		select {
		case <-ctx.Done():
			t.quit(wctx)
		case <-wctx.Done():
		}
	}()
}

// domReady marks the window shown and applies the window-manager hints.
// Hinting runs in the background because the window may not be mapped yet.
func (t *Toolkit) domReady(wctx context.Context, w *Window) {
	w.visible.Store(true)

	hints := platform.Hints{
		SkipTaskbar: w.opts.SkipTaskbar,
		Sticky:      w.opts.Sticky,
		KeepAbove:   w.opts.KeepAbove,
	}

	go func() {
		err := errors.WithRetryContext(wctx, t.retry, func() error {
			return t.hinter.ApplyHints(wctx, w.opts.Title, hints)
		}, "apply_window_hints")
		if err != nil {
			t.logger.Warn("Window hints not applied",
				"title", w.opts.Title,
				"error", err.Error())
		}
	}()
}

// contentHandler serves content as the index page with the bridge script added
func contentHandler(content string) http.Handler {
	page := content
	if i := strings.LastIndex(page, "</body>"); i >= 0 {
		page = page[:i] + bridgeScript + page[i:]
	} else {
		page += bridgeScript
	}

	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			http.NotFound(rw, r)
			return
		}
		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = rw.Write([]byte(page))
	})
}
