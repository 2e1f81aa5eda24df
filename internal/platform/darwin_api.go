//go:build darwin

package platform

import "context"

// DarwinAPI implements WindowHinter for macOS. Wails already keeps the window
// above others; taskbar and workspace states have no equivalent to set here.
type DarwinAPI struct{}

// NewDarwinAPI creates a new macOS API instance
func NewDarwinAPI() *DarwinAPI {
	return &DarwinAPI{}
}

// NewWindowHinter creates the WindowHinter for macOS
func NewWindowHinter() WindowHinter {
	return NewDarwinAPI()
}

func (d *DarwinAPI) ApplyHints(ctx context.Context, title string, hints Hints) error {
	return nil
}
