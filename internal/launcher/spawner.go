// Package launcher hands command lines to the OS shell without waiting for them.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"desktiles/internal/infrastructure/errors"
	"desktiles/internal/infrastructure/logging"
)

// Spawner starts a command line and returns as soon as it has been handed off
type Spawner interface {
	Spawn(command string) error
}

// ShellSpawner runs command lines through a shell as detached processes.
// The exit status of a spawned command is never observed.
type ShellSpawner struct {
	shell  []string
	logger logging.Logger
}

// NewShellSpawner creates a spawner using shell as the interpreter argv prefix
// (e.g. ["/bin/sh", "-c"]). An empty shell selects the platform default; a bare
// interpreter gets the platform's command-string flag appended.
func NewShellSpawner(shell []string, logger logging.Logger) *ShellSpawner {
	switch len(shell) {
	case 0:
		shell = DefaultShell()
	case 1:
		shell = []string{shell[0], commandFlag()}
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &ShellSpawner{
		shell:  append([]string(nil), shell...),
		logger: logger,
	}
}

// ParseShell splits a space separated shell override such as "/bin/bash -c"
func ParseShell(s string) []string {
	return strings.Fields(s)
}

// Shell returns the interpreter argv prefix
func (s *ShellSpawner) Shell() []string {
	return append([]string(nil), s.shell...)
}

// Spawn starts command in the shell and returns once the process exists.
// The command string is passed verbatim as the shell's final argument.
func (s *ShellSpawner) Spawn(command string) error {
	args := append(s.Shell()[1:], command)
	cmd := exec.Command(s.shell[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = detachedAttr(cmd.Args)

	if err := cmd.Start(); err != nil {
		return errors.NewTileErrorWithContext("spawn",
			fmt.Errorf("start shell: %w", err),
			errors.ErrCodeSpawn,
			map[string]string{
				"shell":   s.shell[0],
				"command": command,
			})
	}

	s.logger.Debug("Command launched", "pid", cmd.Process.Pid, "command", command)

	// Reap the child so it does not linger as a zombie; the result is discarded.
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
