//go:build windows

package gateways

import "os/exec"

// killProcessGroup is a no-op on Windows; WaitDelay still bounds Run
func killProcessGroup(_ *exec.Cmd) {}
