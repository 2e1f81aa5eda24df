//go:build !linux && !darwin && !windows

package platform

import "context"

// noopAPI is used where no window-manager integration exists
type noopAPI struct{}

// NewWindowHinter creates a WindowHinter that applies nothing
func NewWindowHinter() WindowHinter {
	return noopAPI{}
}

func (noopAPI) ApplyHints(ctx context.Context, title string, hints Hints) error {
	return nil
}
