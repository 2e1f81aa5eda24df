package testutils

import (
	"context"
	"errors"
	"sync"

	"desktiles/internal/toolkit"
)

// RecordedWindow is a window created by a RecordingToolkit
type RecordedWindow struct {
	id         int
	opts       toolkit.WindowOptions
	onActivate func()
}

func (w *RecordedWindow) ID() int { return w.id }
func (w *RecordedWindow) Options() toolkit.WindowOptions { return w.opts }
func (w *RecordedWindow) Visible() bool { return true }

// Click simulates the user activating the window
func (w *RecordedWindow) Click() {
	if w.onActivate != nil {
		w.onActivate()
	}
}

// RecordingToolkit is an in-memory toolkit.Context that records created windows
type RecordingToolkit struct {
	mu      sync.Mutex
	windows []*RecordedWindow

	// NewWindowErr, when set, is returned by NewWindow
	NewWindowErr error
	// RunErr, when set, is returned by Run immediately
	RunErr error
}

// NewRecordingToolkit creates an empty recording toolkit
func NewRecordingToolkit() *RecordingToolkit {
	return &RecordingToolkit{}
}

func (r *RecordingToolkit) NewWindow(opts toolkit.WindowOptions, onActivate func()) (toolkit.Window, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.NewWindowErr != nil {
		return nil, r.NewWindowErr
	}

	w := &RecordedWindow{id: len(r.windows) + 1, opts: opts, onActivate: onActivate}
	r.windows = append(r.windows, w)
	return w, nil
}

// Run blocks until ctx is done
func (r *RecordingToolkit) Run(ctx context.Context) error {
	if r.RunErr != nil {
		return r.RunErr
	}
	<-ctx.Done()
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return ctx.Err()
}

// Windows returns the windows created so far
func (r *RecordingToolkit) Windows() []*RecordedWindow {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*RecordedWindow(nil), r.windows...)
}

// RecordingSpawner records every command it is asked to launch
type RecordingSpawner struct {
	mu       sync.Mutex
	commands []string

	// Err, when set, is returned by every Spawn call
	Err error
}

func (s *RecordingSpawner) Spawn(command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, command)
	return s.Err
}

// Commands returns the commands spawned so far
func (s *RecordingSpawner) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}
