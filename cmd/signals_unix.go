//go:build !windows
// +build !windows

package cmd

import (
	"os"
	"syscall"
)

func terminationSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
}
