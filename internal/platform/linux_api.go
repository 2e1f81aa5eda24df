//go:build linux

package platform

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"

	"desktiles/internal/infrastructure/errors"
)

// LinuxAPI sets EWMH window states through wmctrl
type LinuxAPI struct {
	wmctrl string
}

// NewLinuxAPI creates a new Linux API instance
func NewLinuxAPI() *LinuxAPI {
	return &LinuxAPI{wmctrl: "wmctrl"}
}

// NewWindowHinter creates the WindowHinter for Linux
func NewWindowHinter() WindowHinter {
	return NewLinuxAPI()
}

// wmctrlStates maps hints to _NET_WM_STATE names. wmctrl changes at most two
// states per call.
func wmctrlStates(hints Hints) [][]string {
	var states []string
	if hints.SkipTaskbar {
		states = append(states, "skip_taskbar", "skip_pager")
	}
	if hints.Sticky {
		states = append(states, "sticky")
	}
	if hints.KeepAbove {
		states = append(states, "above")
	}

	var batches [][]string
	for len(states) > 0 {
		n := min(2, len(states))
		batches = append(batches, states[:n])
		states = states[n:]
	}
	return batches
}

// wmctrlArgs builds the argument list that adds states to the window titled title
func wmctrlArgs(title string, states []string) []string {
	return []string{"-F", "-r", title, "-b", "add," + strings.Join(states, ",")}
}

// ApplyHints adds the requested states to the window with exactly this title
func (l *LinuxAPI) ApplyHints(ctx context.Context, title string, hints Hints) error {
	batches := wmctrlStates(hints)
	if len(batches) == 0 {
		return nil
	}

	if _, err := exec.LookPath(l.wmctrl); err != nil {
		return errors.NewTileErrorWithContext("apply_hints", err, errors.ErrCodeUnsupported,
			map[string]string{"tool": l.wmctrl})
	}

	for _, states := range batches {
		var stderr bytes.Buffer
		cmd := exec.CommandContext(ctx, l.wmctrl, wmctrlArgs(title, states)...)
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			// wmctrl exits 1 when no window matches; the window may not be mapped yet.
			var exitErr *exec.ExitError
			code := errors.ErrCodePlatform
			if ctx.Err() == nil && stderrors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
				code = errors.ErrCodeWindowNotFound
			}
			return errors.NewTileErrorWithContext("apply_hints",
				fmt.Errorf("wmctrl %s: %w: %s", strings.Join(states, ","), err, strings.TrimSpace(stderr.String())),
				code,
				map[string]string{"title": title})
		}
	}

	return nil
}

