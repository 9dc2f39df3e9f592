// Package editor launches an external editor against a project path,
// detached from the terminal so the CLI can exit immediately.
package editor

import (
	"fmt"
	"os/exec"

	"github.com/pjcli/pj/internal/config"
)

// Launch opens path with the given editor and returns without
// waiting. Std streams are discarded and the child is placed in its
// own session so it survives the CLI's exit.
func Launch(ec config.EditorConfig, path string, reuse bool) error {
	cmd := exec.Command(ec.Command, buildArgs(ec, path, reuse)...)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", ec.Command, err)
	}
	return cmd.Process.Release()
}

func buildArgs(ec config.EditorConfig, path string, reuse bool) []string {
	args := make([]string, 0, len(ec.Args)+2)
	args = append(args, ec.Args...)
	if reuse && ec.ReuseFlag != "" {
		args = append(args, ec.ReuseFlag)
	}
	return append(args, path)
}
