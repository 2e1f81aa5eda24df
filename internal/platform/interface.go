// Package platform applies window-manager hints the toolkit does not expose.
package platform

import "context"

// Hints are the window-manager states requested for a window
type Hints struct {
	SkipTaskbar bool
	Sticky      bool
	KeepAbove   bool
}

// WindowHinter applies hints to the top-level window with the given title.
// A window that is not mapped yet yields an ErrCodeWindowNotFound error so
// callers can retry.
type WindowHinter interface {
	ApplyHints(ctx context.Context, title string, hints Hints) error
}
