//go:build windows

package launcher

import (
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// DefaultShell returns the cmd.exe invocation
func DefaultShell() []string {
	return []string{"cmd.exe", "/C"}
}

// commandFlag makes cmd.exe run the rest of the command line
func commandFlag() string {
	return "/C"
}

// detachedAttr starts the command in a new process group without a console
// window of its own. The command line is handed to cmd.exe unquoted so that
// the shell sees it exactly as written.
func detachedAttr(argv []string) *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CmdLine:       strings.Join(argv, " "),
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.CREATE_NO_WINDOW,
		HideWindow:    true,
	}
}
