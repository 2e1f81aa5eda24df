//go:build unix

package app

import (
	"os"
	"syscall"
)

// interruptProcess asks a host to shut down its event loop
func interruptProcess(p *os.Process) error {
	return p.Signal(syscall.SIGTERM)
}
