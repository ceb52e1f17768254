//go:build windows

package services

import "os/exec"

// configureProcAttrs is a no-op on Windows; there is no POSIX process group
// to arrange before the spawn.
func configureProcAttrs(cmd *exec.Cmd) {}

// killProcessTree kills the direct child. Windows job objects would be
// needed to take descendants down with it; the packaged backend does not
// fork on Windows, so the direct kill covers the shutdown contract.
func killProcessTree(cmd *exec.Cmd) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
}
