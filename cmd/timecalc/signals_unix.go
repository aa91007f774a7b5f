//go:build !windows

package main

import (
	"os"
	"syscall"
)

// stopSignals end the calculator. SIGTSTP is left to bubbletea so ctrl+z
// still suspends.
func stopSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP}
}
