// Package toolkit abstracts the windowing library the tiles are drawn with.
//
// A Context is created once per process and threaded into every component
// that creates windows. Implementations own all widget state; callbacks run on
// the toolkit's event loop one at a time.
package toolkit

import "context"

// WindowOptions describes a top-level window
type WindowOptions struct {
	Title       string
	Width       int
	Height      int
	X           int
	Y           int
	Decorated   bool // title bar and border
	SkipTaskbar bool // excluded from taskbar and alt-tab listings
	KeepAbove   bool // stays above other windows
	Sticky      bool // visible on every virtual desktop
	Resizable   bool
	Content     string // HTML document rendered inside the window
}

// Window is a window created by a Context
type Window interface {
	ID() int
	Options() WindowOptions
	Visible() bool
}

// Context is the process-wide toolkit handle
type Context interface {
	// NewWindow creates a window. Whether it is on screen before Run starts
	// depends on the implementation; Window.Visible reports it. onActivate
	// runs on the event loop each time the window's clickable area is activated.
	NewWindow(opts WindowOptions, onActivate func()) (Window, error)

	// Run blocks dispatching events until the loop ends or ctx is cancelled.
	Run(ctx context.Context) error
}
