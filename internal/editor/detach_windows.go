//go:build windows

package editor

import "os/exec"

func detach(cmd *exec.Cmd) {
	// Windows GUI editors detach on their own.
}
