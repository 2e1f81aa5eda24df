//go:build windows

package app

import "os"

// interruptProcess stops a host; Windows has no catchable termination signal
// for GUI processes.
func interruptProcess(p *os.Process) error {
	return p.Kill()
}
