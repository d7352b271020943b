//go:build !windows

package gateways

import (
	"os/exec"
	"syscall"
)

// killProcessGroup starts the tool in its own process group and makes
// cancellation kill the whole group, so children it spawned cannot keep
// the output pipes open
func killProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
			return cmd.Process.Kill()
		}
		return nil
	}
}
