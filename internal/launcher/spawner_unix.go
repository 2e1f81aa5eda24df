//go:build unix

package launcher

import "syscall"

// DefaultShell returns the POSIX shell invocation
func DefaultShell() []string {
	return []string{"/bin/sh", "-c"}
}

// commandFlag makes a POSIX shell read the command from its next argument
func commandFlag() string {
	return "-c"
}

// detachedAttr puts the command in its own process group so signals aimed at
// this program's group do not reach it.
func detachedAttr(_ []string) *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
