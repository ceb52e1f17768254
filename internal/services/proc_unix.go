//go:build !windows

package services

import (
	"os/exec"
	"syscall"
)

// configureProcAttrs places the child in its own process group so the whole
// backend tree, workers included, can be signalled together.
func configureProcAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcessTree kills the child's process group. A backend that forks
// leaves descendants holding the output pipes; killing only the direct
// child would keep the relay goroutines blocked past shutdown. Falls back
// to the direct child if the group signal fails.
func killProcessTree(cmd *exec.Cmd) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
		_ = cmd.Process.Kill()
	}
}
