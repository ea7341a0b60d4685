package ui

import (
	"fmt"
	"os"
	"os/exec"
)

// Executable returns the path of the running binary, used by restart.
var Executable = os.Executable

// Relaunch runs a fresh copy of the binary with args on the current
// terminal and returns once it exits.
func Relaunch(args []string) error {
	exe, err := Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	cmd := exec.Command(exe, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("relaunch %s: %w", exe, err)
	}
	return nil
}
