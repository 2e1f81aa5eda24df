//go:build linux

package platform

import (
	"context"
	"reflect"
	"testing"

	"desktiles/internal/infrastructure/errors"
)

func TestWmctrlStates(t *testing.T) {
	tests := []struct {
		name  string
		hints Hints
		want  [][]string
	}{
		{"none", Hints{}, nil},
		{"tile", Hints{SkipTaskbar: true, Sticky: true, KeepAbove: true},
			[][]string{{"skip_taskbar", "skip_pager"}, {"sticky", "above"}}},
		{"sticky only", Hints{Sticky: true}, [][]string{{"sticky"}}},
		{"taskbar and above", Hints{SkipTaskbar: true, KeepAbove: true},
			[][]string{{"skip_taskbar", "skip_pager"}, {"above"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wmctrlStates(tt.hints); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wmctrlStates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWmctrlArgs(t *testing.T) {
	got := wmctrlArgs("desktiles: Mote", []string{"sticky", "above"})
	want := []string{"-F", "-r", "desktiles: Mote", "-b", "add,sticky,above"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wmctrlArgs() = %v, want %v", got, want)
	}
}

func TestApplyHints_NoHintsIsNoop(t *testing.T) {
	api := &LinuxAPI{wmctrl: "/nonexistent/wmctrl"}
	if err := api.ApplyHints(context.Background(), "x", Hints{}); err != nil {
		t.Errorf("ApplyHints() error = %v", err)
	}
}

func TestApplyHints_MissingTool(t *testing.T) {
	api := &LinuxAPI{wmctrl: "/nonexistent/wmctrl"}

	err := api.ApplyHints(context.Background(), "x", Hints{Sticky: true})
	if !errors.IsUnsupported(err) {
		t.Fatalf("expected unsupported error, got %v", err)
	}
	if errors.IsRetryable(err) {
		t.Error("a missing tool must not be retried")
	}
}

func TestNewWindowHinter(t *testing.T) {
	if _, ok := NewWindowHinter().(*LinuxAPI); !ok {
		t.Error("expected *LinuxAPI on linux")
	}
}
