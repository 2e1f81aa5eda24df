//go:build windows

package platform

import (
	"context"
	"fmt"
	"syscall"
	"unsafe"

	"desktiles/internal/infrastructure/errors"

	"golang.org/x/sys/windows"
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW       = user32.NewProc("FindWindowW")
	procGetWindowLongPtrW = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW = user32.NewProc("SetWindowLongPtrW")
	procShowWindow        = user32.NewProc("ShowWindow")
)

const (
	gwlExStyle       = ^uintptr(19) // GWL_EXSTYLE (-20)
	wsExToolWindow   = 0x00000080
	wsExAppWindow    = 0x00040000
	swHide           = 0
	swShowNoActivate = 4
)

// WindowsAPI implements WindowHinter for Windows
type WindowsAPI struct{}

// NewWindowsAPI creates a new Windows API instance
func NewWindowsAPI() *WindowsAPI {
	return &WindowsAPI{}
}

// NewWindowHinter creates the WindowHinter for Windows
func NewWindowHinter() WindowHinter {
	return NewWindowsAPI()
}

// ApplyHints hides the window from the taskbar by turning it into a tool
// window. KeepAbove is handled by Wails. Pinning to every virtual desktop has
// no public API and is skipped.
func (w *WindowsAPI) ApplyHints(ctx context.Context, title string, hints Hints) error {
	if !hints.SkipTaskbar {
		return nil
	}

	titlePtr, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		return errors.NewTileError("apply_hints", err, errors.ErrCodeInternal)
	}

	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(titlePtr)))
	if hwnd == 0 {
		return errors.NewTileErrorWithContext("apply_hints",
			fmt.Errorf("no window titled %q", title),
			errors.ErrCodeWindowNotFound,
			map[string]string{"title": title})
	}

	style, _, _ := procGetWindowLongPtrW.Call(hwnd, gwlExStyle)
	style = (style | wsExToolWindow) &^ wsExAppWindow

	// The taskbar only re-reads the style when the window is shown again.
	procShowWindow.Call(hwnd, swHide)
	procSetWindowLongPtrW.Call(hwnd, gwlExStyle, style)
	procShowWindow.Call(hwnd, swShowNoActivate)

	return nil
}
