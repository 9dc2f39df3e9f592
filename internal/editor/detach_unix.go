//go:build !windows

package editor

import (
	"os/exec"
	"syscall"
)

// detach starts the editor in a new session so closing the terminal
// doesn't kill it.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
