//go:build !linux && !darwin

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"memtop is only supported on Linux and macOS.\n\nIf you are seeing this message, you are attempting to build or run memtop on an unsupported platform.\n\nPlease use Linux or macOS to build and run memtop.",
	)
	os.Exit(1)
}
